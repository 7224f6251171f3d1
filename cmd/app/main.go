package main

import (
	"log"
	"os"

	"github.com/yourusername/teen-support/internal/config"
	pgRepo "github.com/yourusername/teen-support/internal/repository/postgres"
	"github.com/yourusername/teen-support/internal/service"
	"github.com/yourusername/teen-support/internal/session"
	"github.com/yourusername/teen-support/internal/ui"
	"github.com/yourusername/teen-support/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	answerRepo := pgRepo.NewAnswerRepo(db)
	counselingRepo := pgRepo.NewCounselingRepo(db)
	moduleRepo := pgRepo.NewModuleRepo(db)
	progressRepo := pgRepo.NewProgressRepo(db)
	resourceRepo := pgRepo.NewResourceRepo(db)
	statsRepo := pgRepo.NewStatsRepo(db)

	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo)
	qnaService := service.NewQnAService(questionRepo, answerRepo, statsRepo)
	counselingService := service.NewCounselingService(counselingRepo)
	educationService := service.NewEducationService(moduleRepo, progressRepo)
	resourceService := service.NewResourceService(resourceRepo)

	// Загружаем контент по умолчанию в пустые таблицы
	if err := educationService.EnsureDefaultModules(); err != nil {
		log.Printf("Failed to seed educational modules: %v", err)
	}
	if err := resourceService.EnsureDefaultResources(); err != nil {
		log.Printf("Failed to seed support resources: %v", err)
	}

	// Хранилище сохраненной сессии ("запомнить имя")
	store := session.NewStore(cfg.App.SessionFile)

	// Запускаем консольный интерфейс
	term := ui.NewTerm(os.Stdin, os.Stdout)
	app := ui.NewApp(term, authService, qnaService, counselingService, educationService, resourceService, store)
	app.Run()
}
