package service

import "errors"

var (
	ErrChaveAPIInvalida     = errors.New("API key inválida para o tipo informado")
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrTipoInvalido         = errors.New("tipo de usuário inválido")
	ErrCamposObrigatorios   = errors.New("campos obrigatórios ausentes")
	ErrQuantidadeInvalida   = errors.New("quantidade deve ser maior que zero")
)
