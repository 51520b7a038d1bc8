package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"registro_web/internal/api"
	"registro_web/internal/models"
	"registro_web/internal/repository"
	"registro_web/internal/service"
	"registro_web/internal/storage"
	"registro_web/pkg/config"
)

func main() {
	// .env é opcional; sem ele valem as variáveis de ambiente do processo.
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Falha ao carregar a configuração: %v", err)
	}

	// Banco inacessível ou URL malformada é fatal na inicialização.
	db, err := storage.Open(cfg.DB.URL)
	if err != nil {
		log.Fatalf("Falha ao inicializar o banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.User{}, &models.Registro{}, &models.AuditLog{}); err != nil {
		log.Fatalf("Falha ao migrar o banco de dados: %v", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	r := gin.Default()
	r.LoadHTMLGlob("internal/view/templates/*")
	api.SetupRoutes(r, services, repos, cfg)

	log.Printf("Servidor local em http://%s", cfg.Server.Address)
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Falha ao iniciar o servidor: %v", err)
	}
}
