package models

import (
	"gorm.io/gorm"
)

// Registro é uma linha do formulário de itens bloqueados: item, quantidade,
// motivo e setor responsável, vinculada ao usuário que inseriu.
// Nunca é alterado nem excluído pela aplicação.
type Registro struct {
	gorm.Model
	Item             string `gorm:"not null;index" json:"item"`
	Quantidade       int    `gorm:"not null" json:"quantidade"`
	Motivo           string `gorm:"size:2000;not null" json:"motivo"`
	SetorResponsavel string `gorm:"size:255;not null;index" json:"setor_responsavel"`
	CriadoPorID      uint   `gorm:"not null;index" json:"criado_por_id"`
	CriadoPor        User   `gorm:"foreignKey:CriadoPorID" json:"-"`
}
