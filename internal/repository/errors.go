package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrUsuarioExistente indica violação de unicidade do username.
	ErrUsuarioExistente = errors.New("usuário já existe")
	// ErrUsuarioNaoEncontrado sinaliza lookup sem resultado ou FK inválida.
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
)

// isDuplicate reconhece violações de chave única dos dois bancos suportados
// (sqlite e postgres), cujas mensagens o GORM nem sempre normaliza.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}
