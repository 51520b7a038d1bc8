package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"registro_web/internal/models"
	"registro_web/internal/storage"
)

func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Registro{}, &models.AuditLog{}))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func criarUsuario(t *testing.T, repo UserRepository, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, SenhaHash: "hash-qualquer", Tipo: models.RoleUsuario}
	require.NoError(t, repo.Create(user))
	return user
}
