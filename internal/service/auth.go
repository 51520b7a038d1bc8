package service

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"registro_web/internal/models"
	"registro_web/internal/repository"
	"registro_web/pkg/config"
)

// AuthService concentra cadastro, login e troca de senha.
type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Registrar cria um usuário após validar a API key do papel escolhido.
// O valor legado "ADM" é aceito e normalizado para ADMINISTRADOR.
func (s *AuthService) Registrar(username, senha string, tipo models.UserRole, apiKey string) (*models.User, error) {
	if tipo == "ADM" {
		tipo = models.RoleAdministrador
	}
	if !tipo.Valid() {
		return nil, ErrTipoInvalido
	}

	expected, ok := config.RegistrationKey(string(tipo))
	if !ok {
		return nil, ErrTipoInvalido
	}
	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
		return nil, ErrChaveAPIInvalida
	}

	username = strings.TrimSpace(username)
	if username == "" || senha == "" {
		return nil, ErrCamposObrigatorios
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  username,
		SenhaHash: string(hash),
		Tipo:      tipo,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica as credenciais e devolve o usuário autenticado (com o
// papel) para a camada de apresentação. Usuário inexistente e senha errada
// produzem o mesmo erro.
func (s *AuthService) Login(username, senha string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	return user, nil
}

// AlterarSenha troca a senha do usuário se a senha atual conferir.
func (s *AuthService) AlterarSenha(username, senhaAtual, novaSenha string) error {
	if novaSenha == "" {
		return ErrCamposObrigatorios
	}
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			return ErrCredenciaisInvalidas
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(senhaAtual)); err != nil {
		return ErrCredenciaisInvalidas
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(novaSenha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateSenhaHash(user, string(hash))
}
