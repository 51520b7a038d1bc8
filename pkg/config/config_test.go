package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearRegistrationEnv(t *testing.T) {
	t.Helper()
	t.Setenv("REGISTRO_API_KEY_USUARIO", "")
	t.Setenv("REGISTRO_API_KEY", "")
	t.Setenv("REGISTRO_API_KEY_ADMINISTRADOR", "")
	t.Setenv("REGISTRO_API_KEY_ADM", "")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SETORES", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Address)
	assert.Equal(t, "dados.db", cfg.DB.URL)
	assert.NotEmpty(t, cfg.Auth.SessionSecret)
	assert.Equal(t, setoresDefault, cfg.Setores)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/registro")
	t.Setenv("SETORES", "Qualidade, Expedição ,Produção")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.Equal(t, "postgres://localhost/registro", cfg.DB.URL)
	assert.Equal(t, []string{"Qualidade", "Expedição", "Produção"}, cfg.Setores)
}

func TestRegistrationKeyRoleSpecificWins(t *testing.T) {
	clearRegistrationEnv(t)
	t.Setenv("REGISTRO_API_KEY_USUARIO", "chave-usuario")
	t.Setenv("REGISTRO_API_KEY", "chave-legada")

	key, ok := RegistrationKey("USUARIO")
	assert.True(t, ok)
	assert.Equal(t, "chave-usuario", key)
}

func TestRegistrationKeyLegacyFallback(t *testing.T) {
	clearRegistrationEnv(t)
	t.Setenv("REGISTRO_API_KEY", "chave-legada")

	key, ok := RegistrationKey("USUARIO")
	assert.True(t, ok)
	assert.Equal(t, "chave-legada", key)
}

func TestRegistrationKeyDefault(t *testing.T) {
	clearRegistrationEnv(t)

	key, ok := RegistrationKey("USUARIO")
	assert.True(t, ok)
	assert.Equal(t, "MINHA_CHAVE_REGISTRO_123", key)
}

func TestRegistrationKeyAdministradorChain(t *testing.T) {
	clearRegistrationEnv(t)

	key, ok := RegistrationKey("ADMINISTRADOR")
	assert.True(t, ok)
	assert.Equal(t, "MINHA_CHAVE_REGISTRO_ADM_123", key)

	t.Setenv("REGISTRO_API_KEY_ADM", "chave-adm-legada")
	key, _ = RegistrationKey("ADMINISTRADOR")
	assert.Equal(t, "chave-adm-legada", key)

	t.Setenv("REGISTRO_API_KEY_ADMINISTRADOR", "chave-adm")
	key, _ = RegistrationKey("ADMINISTRADOR")
	assert.Equal(t, "chave-adm", key)
}

func TestRegistrationKeyUnknownRole(t *testing.T) {
	_, ok := RegistrationKey("GERENTE")
	assert.False(t, ok)
}
