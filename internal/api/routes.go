package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"registro_web/internal/api/handlers"
	"registro_web/internal/middleware"
	"registro_web/internal/repository"
	"registro_web/internal/service"
	"registro_web/pkg/config"
)

func SetupRoutes(r *gin.Engine, services *service.Services, repos *repository.Repositories, cfg *config.Config) {
	secret := []byte(cfg.Auth.SessionSecret)
	store := sessions.NewCookieStore(secret)

	authHandler := handlers.NewAuthHandler(services.Auth, store, secret)
	registroHandler := handlers.NewRegistroHandler(services.Registro, store, cfg.Setores)

	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})

	// Estado não autenticado: login e caminho para o cadastro.
	r.GET("/login", authHandler.ShowLoginPage)
	r.POST("/login", authHandler.ProcessLoginForm)
	r.GET("/cadastro", authHandler.ShowCadastroPage)
	r.POST("/cadastro", authHandler.ProcessCadastroForm)
	r.GET("/logout", authHandler.Logout)

	// Estado autenticado: formulário de registro e troca de senha.
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired(secret, repos.User))
	{
		authorized.GET("", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/registro")
		})
		authorized.GET("/registro", registroHandler.ShowRegistroForm)
		authorized.POST("/registro", registroHandler.ProcessRegistroForm)
		authorized.GET("/senha", authHandler.ShowSenhaPage)
		authorized.POST("/senha", authHandler.ProcessSenhaForm)
	}
}
