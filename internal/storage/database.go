package storage

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB embute o handle GORM compartilhado pela aplicação. O handle pertence à
// camada de armazenamento pelo tempo de vida do processo.
type DB struct {
	*gorm.DB
}

// Open conecta ao banco indicado pela URL. URLs postgres:// (ou DSN com
// host=) usam o driver postgres; qualquer outro valor é tratado como
// caminho de arquivo sqlite, o padrão da aplicação.
func Open(url string) (*DB, error) {
	if url == "" {
		return nil, fmt.Errorf("connection string vazia")
	}

	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"), strings.Contains(url, "host="):
		dialector = postgres.Open(url)
	case strings.HasPrefix(url, "sqlite://"):
		dialector = sqlite.Open(strings.TrimPrefix(url, "sqlite://"))
	default:
		dialector = sqlite.Open(url)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao banco de dados: %w", err)
	}

	return &DB{DB: db}, nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate cria as tabelas que ainda não existem. Seguro chamar mais de
// uma vez contra o mesmo banco.
func (db *DB) AutoMigrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}
