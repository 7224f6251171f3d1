package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/domain/repository"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
	"github.com/yourusername/teen-support/internal/pkg/validate"
)

// ProgressSummary — сводка прогресса пользователя для отображения
type ProgressSummary struct {
	TotalModules     int64
	CompletedModules int64
	AverageScore     float64
	CompletedPercent float64
	Recent           []repository.CompletedModuleRow
}

// EducationService предоставляет учебные модули и учет прогресса
type EducationService struct {
	moduleRepo   repository.ModuleRepository
	progressRepo repository.ProgressRepository
}

// NewEducationService создает новый сервис обучения
func NewEducationService(
	moduleRepo repository.ModuleRepository,
	progressRepo repository.ProgressRepository,
) *EducationService {
	return &EducationService{
		moduleRepo:   moduleRepo,
		progressRepo: progressRepo,
	}
}

// EnsureDefaultModules загружает учебный контент по умолчанию,
// если таблица модулей пуста
func (s *EducationService) EnsureDefaultModules() error {
	count, err := s.moduleRepo.Count()
	if err != nil {
		log.Printf("[EducationService] Ошибка проверки модулей: %v", err)
		return fmt.Errorf("%w: не удалось проверить учебные модули", apperrors.ErrUnavailable)
	}
	if count > 0 {
		return nil
	}

	if err := s.moduleRepo.CreateBatch(defaultModules()); err != nil {
		log.Printf("[EducationService] Ошибка загрузки модулей по умолчанию: %v", err)
		return fmt.Errorf("%w: не удалось загрузить учебные модули", apperrors.ErrUnavailable)
	}

	log.Println("[EducationService] Учебные модули по умолчанию загружены")
	return nil
}

// GetModules возвращает все модули, сгруппированные по категории и сложности
func (s *EducationService) GetModules() ([]entity.EducationalModule, error) {
	modules, err := s.moduleRepo.GetAll()
	if err != nil {
		log.Printf("[EducationService] Ошибка получения модулей: %v", err)
		return nil, fmt.Errorf("%w: не удалось получить учебные модули", apperrors.ErrUnavailable)
	}
	return modules, nil
}

// GetModule возвращает модуль по ID
func (s *EducationService) GetModule(id uint) (*entity.EducationalModule, error) {
	module, err := s.moduleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		log.Printf("[EducationService] Ошибка получения модуля %d: %v", id, err)
		return nil, fmt.Errorf("%w: не удалось получить модуль", apperrors.ErrUnavailable)
	}
	return module, nil
}

// GetModulesByCategory возвращает модули одной категории
func (s *EducationService) GetModulesByCategory(category string) ([]entity.EducationalModule, error) {
	modules, err := s.moduleRepo.GetByCategory(category)
	if err != nil {
		log.Printf("[EducationService] Ошибка получения модулей категории %s: %v", category, err)
		return nil, fmt.Errorf("%w: не удалось получить модули", apperrors.ErrUnavailable)
	}
	return modules, nil
}

// GetCategories возвращает список категорий модулей
func (s *EducationService) GetCategories() ([]string, error) {
	categories, err := s.moduleRepo.Categories()
	if err != nil {
		log.Printf("[EducationService] Ошибка получения категорий: %v", err)
		return nil, fmt.Errorf("%w: не удалось получить категории", apperrors.ErrUnavailable)
	}
	return categories, nil
}

// CompleteModule отмечает модуль пройденным с оценкой 0-100.
// Повторное прохождение обновляет оценку и дату, а не создает дубликат.
func (s *EducationService) CompleteModule(username string, moduleID uint, score int) error {
	if err := validate.Score(score); err != nil {
		return err
	}

	// Модуль должен существовать
	if _, err := s.moduleRepo.GetByID(moduleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		log.Printf("[EducationService] Ошибка получения модуля %d: %v", moduleID, err)
		return fmt.Errorf("%w: не удалось получить модуль", apperrors.ErrUnavailable)
	}

	if err := s.progressRepo.MarkCompleted(username, moduleID, score); err != nil {
		log.Printf("[EducationService] Ошибка записи прогресса %s/%d: %v", username, moduleID, err)
		return fmt.Errorf("%w: не удалось сохранить прогресс", apperrors.ErrUnavailable)
	}

	return nil
}

// GetProgress возвращает сводку прогресса пользователя
func (s *EducationService) GetProgress(username string) (*ProgressSummary, error) {
	row, err := s.progressRepo.Summary(username)
	if err != nil {
		log.Printf("[EducationService] Ошибка получения прогресса %s: %v", username, err)
		return nil, fmt.Errorf("%w: не удалось получить прогресс", apperrors.ErrUnavailable)
	}

	recent, err := s.progressRepo.RecentCompleted(username, 5)
	if err != nil {
		log.Printf("[EducationService] Ошибка получения пройденных модулей %s: %v", username, err)
		return nil, fmt.Errorf("%w: не удалось получить прогресс", apperrors.ErrUnavailable)
	}

	summary := &ProgressSummary{
		TotalModules:     row.TotalModules,
		CompletedModules: row.CompletedModules,
		AverageScore:     row.AverageScore,
		Recent:           recent,
	}
	if row.TotalModules > 0 {
		summary.CompletedPercent = float64(row.CompletedModules) / float64(row.TotalModules) * 100
	}

	return summary, nil
}

// defaultModules — учебный контент по умолчанию
func defaultModules() []entity.EducationalModule {
	return []entity.EducationalModule{
		{
			Title:           "Reproductive Health Basics",
			Category:        "reproductive_health",
			DifficultyLevel: entity.DifficultyBeginner,
			Content: "Reproductive Health is about maintaining your body's health during all stages of life. " +
				"It includes understanding your body, menstrual cycle, fertility, and overall wellness. " +
				"Key points: Regular health check-ups, understanding your body's changes, and knowing when to seek help.",
		},
		{
			Title:           "Understanding Pregnancy Risks",
			Category:        "pregnancy_risks",
			DifficultyLevel: entity.DifficultyIntermediate,
			Content: "Pregnancy Risk increases with unprotected sex and various health factors. " +
				"Important considerations: Age, health conditions, lifestyle factors, and access to healthcare. " +
				"Always consult healthcare providers for personalized advice and regular prenatal care.",
		},
		{
			Title:           "Contraceptive Methods Overview",
			Category:        "contraception",
			DifficultyLevel: entity.DifficultyBeginner,
			Content: "Contraceptive Methods include pills, condoms, implants, IUDs, and more. " +
				"Each method has different effectiveness rates, side effects, and requirements. " +
				"Consult with healthcare providers to choose what fits your lifestyle and health needs.",
		},
		{
			Title:           "Understanding Puberty Changes",
			Category:        "puberty",
			DifficultyLevel: entity.DifficultyBeginner,
			Content: "Puberty is a natural process involving physical, emotional, and hormonal changes. " +
				"Understanding these changes helps you navigate this important life stage with confidence. " +
				"Key topics: Physical development, emotional changes, hygiene, and when to seek guidance.",
		},
		{
			Title:           "STDs Prevention and Awareness",
			Category:        "stds",
			DifficultyLevel: entity.DifficultyIntermediate,
			Content: "STDs (Sexually Transmitted Diseases) are infections passed through sexual contact. " +
				"Prevention methods: Safe sex practices, regular testing, vaccination when available, and open communication with partners. " +
				"Always stay informed and protected - early detection and treatment are crucial.",
		},
		{
			Title:           "Advanced Contraception Planning",
			Category:        "contraception",
			DifficultyLevel: entity.DifficultyAdvanced,
			Content: "Advanced contraception planning involves understanding long-term reproductive goals, " +
				"comparing different methods' effectiveness, side effects, and costs. " +
				"Includes emergency contraception, fertility awareness methods, and permanent options.",
		},
		{
			Title:           "Teenage Pregnancy Health Considerations",
			Category:        "pregnancy_risks",
			DifficultyLevel: entity.DifficultyAdvanced,
			Content: "Teenage pregnancy requires special health considerations due to physical and emotional development. " +
				"Important factors: Nutritional needs, prenatal care, educational options, and support systems. " +
				"Comprehensive care involves medical, emotional, and social support.",
		},
	}
}
