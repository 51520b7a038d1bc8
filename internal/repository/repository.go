package repository

import "registro_web/internal/storage"

type Repositories struct {
	User     UserRepository
	Registro RegistroRepository
	AuditLog AuditLogRepository
}

func NewRepositories(db *storage.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Registro: NewRegistroRepository(db),
		AuditLog: NewAuditLogRepository(db),
	}
}
