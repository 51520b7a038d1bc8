package service

import (
	"registro_web/internal/repository"
)

type Services struct {
	Auth     *AuthService
	Registro *RegistroService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User),
		Registro: NewRegistroService(repos.Registro, repos.AuditLog),
	}
}
