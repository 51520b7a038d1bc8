package repository

import (
	"registro_web/internal/models"
	"registro_web/internal/storage"
)

type AuditLogRepository interface {
	Create(entry *models.AuditLog) error
}

type auditLogRepository struct {
	db *storage.DB
}

func NewAuditLogRepository(db *storage.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}
