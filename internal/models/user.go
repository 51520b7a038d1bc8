package models

import (
	"gorm.io/gorm"
)

// User representa um usuário do sistema. Criado no cadastro (após
// validação da API key); nunca é excluído pela aplicação.
type User struct {
	gorm.Model
	Username  string   `gorm:"uniqueIndex;not null" json:"username"`
	SenhaHash string   `gorm:"not null" json:"-"`
	Tipo      UserRole `gorm:"not null;default:'USUARIO'" json:"tipo"`
}

// UserRole define o tipo (papel) do usuário.
type UserRole string

const (
	RoleUsuario       UserRole = "USUARIO"
	RoleAdministrador UserRole = "ADMINISTRADOR"
)

// Valid informa se o papel é um dos valores aceitos.
func (r UserRole) Valid() bool {
	return r == RoleUsuario || r == RoleAdministrador
}
