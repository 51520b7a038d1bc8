package service

import (
	"strings"

	"registro_web/internal/models"
	"registro_web/internal/repository"
)

// RegistroService valida e persiste as linhas do formulário de itens.
type RegistroService struct {
	registroRepo repository.RegistroRepository
	auditRepo    repository.AuditLogRepository
}

func NewRegistroService(registroRepo repository.RegistroRepository, auditRepo repository.AuditLogRepository) *RegistroService {
	return &RegistroService{registroRepo: registroRepo, auditRepo: auditRepo}
}

// Criar insere um registro vinculado ao usuário autenticado. Campos
// obrigatórios vazios rejeitam a submissão sem tocar no banco.
func (s *RegistroService) Criar(item string, quantidade int, motivo, setor string, criador *models.User) (*models.Registro, error) {
	item = strings.TrimSpace(item)
	motivo = strings.TrimSpace(motivo)
	setor = strings.TrimSpace(setor)
	if item == "" || motivo == "" || setor == "" {
		return nil, ErrCamposObrigatorios
	}
	if quantidade <= 0 {
		return nil, ErrQuantidadeInvalida
	}

	registro := &models.Registro{
		Item:             item,
		Quantidade:       quantidade,
		Motivo:           motivo,
		SetorResponsavel: setor,
		CriadoPorID:      criador.ID,
	}
	if err := s.registroRepo.Create(registro); err != nil {
		return nil, err
	}

	// Auditoria em melhor esforço: falha aqui não desfaz o insert.
	_ = s.auditRepo.Create(&models.AuditLog{
		Usuario:   criador.Username,
		Transacao: "Bloqueado",
		Tipo:      "input",
	})

	return registro, nil
}

// BuscarPorID devolve um registro com o criador carregado.
func (s *RegistroService) BuscarPorID(id uint) (*models.Registro, error) {
	return s.registroRepo.FindByID(id)
}
