package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"registro_web/internal/middleware"
	"registro_web/internal/models"
	"registro_web/internal/repository"
	"registro_web/internal/service"
	"registro_web/internal/utils"
)

// SessionName identifica a sessão de flash messages.
const SessionName = "registro-web-flash"

// AuthHandler atende as telas de login, cadastro e troca de senha.
type AuthHandler struct {
	authService *service.AuthService
	store       *sessions.CookieStore
	secret      []byte
}

func NewAuthHandler(authService *service.AuthService, store *sessions.CookieStore, secret []byte) *AuthHandler {
	return &AuthHandler{authService: authService, store: store, secret: secret}
}

// flashes consome as mensagens pendentes da sessão.
func (h *AuthHandler) flashes(c *gin.Context) ([]interface{}, []interface{}) {
	session, _ := h.store.Get(c.Request, SessionName)
	success := session.Flashes("success")
	failure := session.Flashes("error")
	_ = session.Save(c.Request, c.Writer)
	return success, failure
}

// flash guarda uma mensagem para a próxima página e redireciona.
func (h *AuthHandler) flash(c *gin.Context, kind, msg, location string) {
	session, _ := h.store.Get(c.Request, SessionName)
	session.AddFlash(msg, kind)
	_ = session.Save(c.Request, c.Writer)
	c.Redirect(http.StatusFound, location)
}

func (h *AuthHandler) ShowLoginPage(c *gin.Context) {
	success, failure := h.flashes(c)
	c.HTML(http.StatusOK, "login.html", gin.H{
		"FlashesSuccess": success,
		"FlashesError":   failure,
	})
}

func (h *AuthHandler) ProcessLoginForm(c *gin.Context) {
	username := c.PostForm("username")
	senha := c.PostForm("senha")
	if username == "" || senha == "" {
		h.flash(c, "error", "Informe usuário e senha.", "/login")
		return
	}

	user, err := h.authService.Login(username, senha)
	if err != nil {
		h.flash(c, "error", "Credenciais inválidas.", "/login")
		return
	}

	token, err := utils.GenerateSessionToken(h.secret, user)
	if err != nil {
		h.flash(c, "error", "Erro ao iniciar a sessão. Tente novamente.", "/login")
		return
	}
	c.SetCookie(middleware.SessionCookie, token, 12*60*60, "/", "", false, true)
	c.Redirect(http.StatusFound, "/registro")
}

func (h *AuthHandler) ShowCadastroPage(c *gin.Context) {
	success, failure := h.flashes(c)
	c.HTML(http.StatusOK, "cadastro.html", gin.H{
		"FlashesSuccess": success,
		"FlashesError":   failure,
		"Tipos":          []string{string(models.RoleUsuario), string(models.RoleAdministrador)},
	})
}

func (h *AuthHandler) ProcessCadastroForm(c *gin.Context) {
	username := c.PostForm("username")
	senha := c.PostForm("senha")
	confirmar := c.PostForm("confirmar")
	tipo := c.PostForm("tipo")
	apiKey := c.PostForm("api_key")

	if username == "" || senha == "" {
		h.flash(c, "error", "Preencha usuário e senha.", "/cadastro")
		return
	}
	if senha != confirmar {
		h.flash(c, "error", "Senhas não conferem.", "/cadastro")
		return
	}

	_, err := h.authService.Registrar(username, senha, models.UserRole(tipo), apiKey)
	switch {
	case errors.Is(err, service.ErrChaveAPIInvalida):
		h.flash(c, "error", "API key inválida para o tipo informado.", "/cadastro")
	case errors.Is(err, repository.ErrUsuarioExistente):
		h.flash(c, "error", "Usuário já existe.", "/cadastro")
	case errors.Is(err, service.ErrTipoInvalido):
		h.flash(c, "error", "Tipo de usuário inválido.", "/cadastro")
	case errors.Is(err, service.ErrCamposObrigatorios):
		h.flash(c, "error", "Preencha usuário e senha.", "/cadastro")
	case err != nil:
		h.flash(c, "error", "Erro ao criar usuário. Tente novamente.", "/cadastro")
	default:
		h.flash(c, "success", "Usuário registrado. Faça login.", "/login")
	}
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowSenhaPage(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	success, failure := h.flashes(c)
	c.HTML(http.StatusOK, "senha.html", gin.H{
		"Username":       user.Username,
		"FlashesSuccess": success,
		"FlashesError":   failure,
	})
}

func (h *AuthHandler) ProcessSenhaForm(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	senhaAtual := c.PostForm("senha_atual")
	novaSenha := c.PostForm("nova_senha")
	confirmar := c.PostForm("confirmar")

	if senhaAtual == "" || novaSenha == "" {
		h.flash(c, "error", "Informe a senha atual e a nova senha.", "/senha")
		return
	}
	if novaSenha != confirmar {
		h.flash(c, "error", "Senhas não conferem.", "/senha")
		return
	}

	err := h.authService.AlterarSenha(user.Username, senhaAtual, novaSenha)
	switch {
	case errors.Is(err, service.ErrCredenciaisInvalidas):
		h.flash(c, "error", "A senha atual está incorreta.", "/senha")
	case err != nil:
		h.flash(c, "error", "Falha ao atualizar a senha.", "/senha")
	default:
		h.flash(c, "success", "Senha alterada com sucesso.", "/registro")
	}
}
