package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Auth    AuthConfig
	Setores []string
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	URL string
}

type AuthConfig struct {
	SessionSecret string
}

// Load lê a configuração do ambiente. Todos os valores possuem padrão,
// então Load só falha se o viper não conseguir ler o ambiente.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SERVER_ADDRESS", "127.0.0.1:8080")
	// Padrão: banco sqlite local em arquivo, igual ao dados.db original.
	v.SetDefault("DATABASE_URL", "dados.db")
	v.SetDefault("SESSION_SECRET", "registro-web-session")
	v.SetDefault("SETORES", strings.Join(setoresDefault, ","))

	config := &Config{
		Server:  ServerConfig{Address: v.GetString("SERVER_ADDRESS")},
		DB:      DBConfig{URL: v.GetString("DATABASE_URL")},
		Auth:    AuthConfig{SessionSecret: v.GetString("SESSION_SECRET")},
		Setores: parseCSV(v.GetString("SETORES")),
	}

	return config, nil
}

// setoresDefault é usado quando a variável SETORES não define a lista.
var setoresDefault = []string{
	"Produção",
	"Recebimento",
	"Armazenagem e Ressuprimento",
	"SME - Logistica reversa",
	"Controle de Estoque",
	"Efacil",
	"Qualidade",
	"Expedição",
}

func parseCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// keyChain é a lista ordenada de fontes para a chave de registro de um papel.
type keyChain struct {
	envs     []string
	fallback string
}

var registrationKeys = map[string]keyChain{
	"USUARIO": {
		envs:     []string{"REGISTRO_API_KEY_USUARIO", "REGISTRO_API_KEY"},
		fallback: "MINHA_CHAVE_REGISTRO_123",
	},
	"ADMINISTRADOR": {
		envs:     []string{"REGISTRO_API_KEY_ADMINISTRADOR", "REGISTRO_API_KEY_ADM"},
		fallback: "MINHA_CHAVE_REGISTRO_ADM_123",
	},
}

// RegistrationKey resolve a chave de registro esperada para o papel
// informado, percorrendo as fontes em ordem: variável de ambiente do papel,
// variável legada compartilhada e, por último, o valor padrão embutido.
// A primeira fonte não vazia vence. Retorna false para papel desconhecido.
func RegistrationKey(role string) (string, bool) {
	chain, ok := registrationKeys[role]
	if !ok {
		return "", false
	}
	for _, env := range chain.envs {
		if value := os.Getenv(env); value != "" {
			return value, true
		}
	}
	return chain.fallback, true
}
