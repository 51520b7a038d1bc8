package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registro_web/internal/repository"
	"registro_web/internal/utils"
)

// SessionCookie é o nome do cookie que guarda o token de sessão.
const SessionCookie = "registro_sessao"

// AuthRequired valida o cookie de sessão e recarrega o usuário do banco a
// cada requisição. Sem sessão válida, redireciona para a tela de login.
func AuthRequired(secret []byte, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := utils.ParseSessionToken(secret, tokenString)
		if err != nil {
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
