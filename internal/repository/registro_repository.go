package repository

import (
	"registro_web/internal/models"
	"registro_web/internal/storage"
)

type RegistroRepository interface {
	Create(registro *models.Registro) error
	FindByID(id uint) (*models.Registro, error)
}

type registroRepository struct {
	db *storage.DB
}

func NewRegistroRepository(db *storage.DB) RegistroRepository {
	return &registroRepository{db: db}
}

// Create insere o registro. O dono é conferido antes do insert porque o
// sqlite, por padrão, não rejeita FKs inválidas sozinho.
func (r *registroRepository) Create(registro *models.Registro) error {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", registro.CriadoPorID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUsuarioNaoEncontrado
	}
	return r.db.Create(registro).Error
}

func (r *registroRepository) FindByID(id uint) (*models.Registro, error) {
	var registro models.Registro
	if err := r.db.Preload("CriadoPor").First(&registro, id).Error; err != nil {
		return nil, err
	}
	return &registro, nil
}
