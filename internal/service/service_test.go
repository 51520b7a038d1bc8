package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"registro_web/internal/models"
	"registro_web/internal/repository"
	"registro_web/internal/storage"
)

func setupRepos(t *testing.T) (*repository.Repositories, *storage.DB) {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Registro{}, &models.AuditLog{}))
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewRepositories(db), db
}

func clearRegistrationEnv(t *testing.T) {
	t.Helper()
	t.Setenv("REGISTRO_API_KEY_USUARIO", "")
	t.Setenv("REGISTRO_API_KEY", "")
	t.Setenv("REGISTRO_API_KEY_ADMINISTRADOR", "")
	t.Setenv("REGISTRO_API_KEY_ADM", "")
}
