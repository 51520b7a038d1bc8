package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"registro_web/internal/models"
	"registro_web/internal/repository"
	"registro_web/internal/service"
)

// RegistroHandler atende o formulário de itens (item, quantidade, motivo e
// setor responsável).
type RegistroHandler struct {
	registroService *service.RegistroService
	store           *sessions.CookieStore
	setores         []string
}

func NewRegistroHandler(registroService *service.RegistroService, store *sessions.CookieStore, setores []string) *RegistroHandler {
	return &RegistroHandler{registroService: registroService, store: store, setores: setores}
}

func (h *RegistroHandler) flash(c *gin.Context, kind, msg string) {
	session, _ := h.store.Get(c.Request, SessionName)
	session.AddFlash(msg, kind)
	_ = session.Save(c.Request, c.Writer)
	c.Redirect(http.StatusFound, "/registro")
}

func (h *RegistroHandler) ShowRegistroForm(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	session, _ := h.store.Get(c.Request, SessionName)
	success := session.Flashes("success")
	failure := session.Flashes("error")
	_ = session.Save(c.Request, c.Writer)

	c.HTML(http.StatusOK, "registro.html", gin.H{
		"Username":       user.Username,
		"Tipo":           string(user.Tipo),
		"Setores":        h.setores,
		"FlashesSuccess": success,
		"FlashesError":   failure,
	})
}

func (h *RegistroHandler) ProcessRegistroForm(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	item := c.PostForm("item")
	quantidadeRaw := c.PostForm("quantidade")
	motivo := c.PostForm("motivo")
	setor := c.PostForm("setor_responsavel")

	// Validação local: campo obrigatório vazio não chega ao banco.
	if item == "" {
		h.flash(c, "error", "Item é obrigatório.")
		return
	}
	if quantidadeRaw == "" {
		h.flash(c, "error", "Quantidade é obrigatória.")
		return
	}
	if motivo == "" {
		h.flash(c, "error", "Motivo é obrigatório.")
		return
	}
	if setor == "" {
		h.flash(c, "error", "Selecione um Setor.")
		return
	}

	quantidade, err := strconv.Atoi(quantidadeRaw)
	if err != nil {
		h.flash(c, "error", "Quantidade inválida.")
		return
	}

	registro, err := h.registroService.Criar(item, quantidade, motivo, setor, user)
	switch {
	case errors.Is(err, service.ErrQuantidadeInvalida):
		h.flash(c, "error", "Quantidade deve ser maior que zero.")
	case errors.Is(err, service.ErrCamposObrigatorios):
		h.flash(c, "error", "Preencha todos os campos obrigatórios.")
	case errors.Is(err, repository.ErrUsuarioNaoEncontrado):
		h.flash(c, "error", "Usuário não encontrado.")
	case err != nil:
		h.flash(c, "error", fmt.Sprintf("Falha ao salvar: %v", err))
	default:
		h.flash(c, "success", fmt.Sprintf("Registro #%d inserido: %s (Qtd: %d)", registro.ID, registro.Item, registro.Quantidade))
	}
}
