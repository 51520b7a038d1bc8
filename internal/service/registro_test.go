package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registro_web/internal/models"
	"registro_web/internal/repository"
)

func criarUsuarioDeTeste(t *testing.T, repos *repository.Repositories, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, SenhaHash: "hash-qualquer", Tipo: models.RoleUsuario}
	require.NoError(t, repos.User.Create(user))
	return user
}

func TestCriarRegistro(t *testing.T) {
	repos, db := setupRepos(t)
	svc := NewRegistroService(repos.Registro, repos.AuditLog)
	joao := criarUsuarioDeTeste(t, repos, "joao")

	registro, err := svc.Criar("Parafuso", 10, "Reposição", "Manutenção", joao)
	require.NoError(t, err)
	require.NotZero(t, registro.ID)

	loaded, err := svc.BuscarPorID(registro.ID)
	require.NoError(t, err)
	assert.Equal(t, "Parafuso", loaded.Item)
	assert.Equal(t, 10, loaded.Quantidade)
	assert.Equal(t, "Reposição", loaded.Motivo)
	assert.Equal(t, "Manutenção", loaded.SetorResponsavel)
	assert.Equal(t, "joao", loaded.CriadoPor.Username)

	// Auditoria registrada junto.
	var audits int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&audits).Error)
	assert.Equal(t, int64(1), audits)
}

func TestCriarRegistroCamposVazios(t *testing.T) {
	repos, db := setupRepos(t)
	svc := NewRegistroService(repos.Registro, repos.AuditLog)
	joao := criarUsuarioDeTeste(t, repos, "joao")

	casos := []struct {
		nome   string
		item   string
		motivo string
		setor  string
	}{
		{"sem item", "", "Reposição", "Manutenção"},
		{"sem motivo", "Parafuso", "", "Manutenção"},
		{"sem setor", "Parafuso", "Reposição", ""},
		{"item em branco", "   ", "Reposição", "Manutenção"},
	}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			_, err := svc.Criar(caso.item, 10, caso.motivo, caso.setor, joao)
			assert.ErrorIs(t, err, ErrCamposObrigatorios)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Registro{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCriarRegistroQuantidadeInvalida(t *testing.T) {
	repos, db := setupRepos(t)
	svc := NewRegistroService(repos.Registro, repos.AuditLog)
	joao := criarUsuarioDeTeste(t, repos, "joao")

	_, err := svc.Criar("Parafuso", 0, "Reposição", "Manutenção", joao)
	assert.ErrorIs(t, err, ErrQuantidadeInvalida)

	_, err = svc.Criar("Parafuso", -3, "Reposição", "Manutenção", joao)
	assert.ErrorIs(t, err, ErrQuantidadeInvalida)

	var count int64
	require.NoError(t, db.Model(&models.Registro{}).Count(&count).Error)
	assert.Zero(t, count)
}

// falhaAudit simula uma auditoria indisponível.
type falhaAudit struct{}

func (falhaAudit) Create(*models.AuditLog) error { return errors.New("auditoria fora do ar") }

func TestCriarRegistroAuditoriaMelhorEsforco(t *testing.T) {
	repos, db := setupRepos(t)
	svc := NewRegistroService(repos.Registro, falhaAudit{})
	joao := criarUsuarioDeTeste(t, repos, "joao")

	registro, err := svc.Criar("Parafuso", 10, "Reposição", "Manutenção", joao)
	require.NoError(t, err)
	assert.NotZero(t, registro.ID)

	var count int64
	require.NoError(t, db.Model(&models.Registro{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
