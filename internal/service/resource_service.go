package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/domain/repository"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// ResourceService предоставляет справочник местных служб поддержки
type ResourceService struct {
	resourceRepo repository.ResourceRepository
}

// NewResourceService создает новый сервис ресурсов поддержки
func NewResourceService(resourceRepo repository.ResourceRepository) *ResourceService {
	return &ResourceService{resourceRepo: resourceRepo}
}

// EnsureDefaultResources загружает справочник по умолчанию,
// если таблица ресурсов пуста
func (s *ResourceService) EnsureDefaultResources() error {
	count, err := s.resourceRepo.Count()
	if err != nil {
		log.Printf("[ResourceService] Ошибка проверки ресурсов: %v", err)
		return fmt.Errorf("%w: не удалось проверить справочник ресурсов", apperrors.ErrUnavailable)
	}
	if count > 0 {
		return nil
	}

	if err := s.resourceRepo.CreateBatch(defaultResources()); err != nil {
		log.Printf("[ResourceService] Ошибка загрузки справочника: %v", err)
		return fmt.Errorf("%w: не удалось загрузить справочник ресурсов", apperrors.ErrUnavailable)
	}

	log.Println("[ResourceService] Справочник ресурсов по умолчанию загружен")
	return nil
}

// GetAll возвращает все ресурсы
func (s *ResourceService) GetAll() ([]entity.SupportResource, error) {
	resources, err := s.resourceRepo.GetAll()
	if err != nil {
		log.Printf("[ResourceService] Ошибка получения ресурсов: %v", err)
		return nil, fmt.Errorf("%w: не удалось получить ресурсы", apperrors.ErrUnavailable)
	}
	return resources, nil
}

// GetByType возвращает ресурсы одного типа
func (s *ResourceService) GetByType(resourceType string) ([]entity.SupportResource, error) {
	resources, err := s.resourceRepo.GetByType(resourceType)
	if err != nil {
		log.Printf("[ResourceService] Ошибка получения ресурсов типа %s: %v", resourceType, err)
		return nil, fmt.Errorf("%w: не удалось получить ресурсы", apperrors.ErrUnavailable)
	}
	return resources, nil
}

// GetByCity ищет ресурсы по подстроке названия города
func (s *ResourceService) GetByCity(city string) ([]entity.SupportResource, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("%w: укажите название города", apperrors.ErrValidation)
	}

	resources, err := s.resourceRepo.GetByCity(city)
	if err != nil {
		log.Printf("[ResourceService] Ошибка поиска ресурсов по городу %s: %v", city, err)
		return nil, fmt.Errorf("%w: не удалось получить ресурсы", apperrors.ErrUnavailable)
	}
	return resources, nil
}

// GetAvailable247 возвращает круглосуточно доступные ресурсы
func (s *ResourceService) GetAvailable247() ([]entity.SupportResource, error) {
	resources, err := s.resourceRepo.GetAvailable247()
	if err != nil {
		log.Printf("[ResourceService] Ошибка получения круглосуточных ресурсов: %v", err)
		return nil, fmt.Errorf("%w: не удалось получить ресурсы", apperrors.ErrUnavailable)
	}
	return resources, nil
}

// GetCities возвращает список городов с ресурсами
func (s *ResourceService) GetCities() ([]string, error) {
	cities, err := s.resourceRepo.Cities()
	if err != nil {
		log.Printf("[ResourceService] Ошибка получения списка городов: %v", err)
		return nil, fmt.Errorf("%w: не удалось получить список городов", apperrors.ErrUnavailable)
	}
	return cities, nil
}

// GetTypes возвращает список типов ресурсов
func (s *ResourceService) GetTypes() ([]string, error) {
	types, err := s.resourceRepo.Types()
	if err != nil {
		log.Printf("[ResourceService] Ошибка получения типов ресурсов: %v", err)
		return nil, fmt.Errorf("%w: не удалось получить типы ресурсов", apperrors.ErrUnavailable)
	}
	return types, nil
}

// defaultResources — справочник служб поддержки Руанды по умолчанию
func defaultResources() []entity.SupportResource {
	return []entity.SupportResource{
		// Клиники
		{
			Name:           "Kigali University Teaching Hospital (CHUK)",
			Type:           entity.ResourceTypeClinic,
			Description:    "Main public hospital in Kigali providing comprehensive healthcare including reproductive health services.",
			Phone:          "+250 252 575 555",
			Email:          "info@chuk.gov.rw",
			Address:        "KN 4 Ave, Kigali",
			City:           "Kigali",
			Country:        "Rwanda",
			Website:        "https://www.chuk.gov.rw",
			IsAvailable247: true,
		},
		{
			Name:           "King Faisal Hospital",
			Type:           entity.ResourceTypeClinic,
			Description:    "Private hospital offering quality healthcare services including maternal and reproductive health.",
			Phone:          "+250 252 582 421",
			Email:          "info@kfh.rw",
			Address:        "KG 544 St, Kigali",
			City:           "Kigali",
			Country:        "Rwanda",
			Website:        "https://www.kfh.rw",
			IsAvailable247: true,
		},
		{
			Name:        "Polyclinic du Plateau",
			Type:        entity.ResourceTypeClinic,
			Description: "Private clinic providing reproductive health and family planning services.",
			Phone:       "+250 252 572 613",
			Email:       "info@polycliniqueduplateau.rw",
			Address:     "KN 67 St, Kigali",
			City:        "Kigali",
			Country:     "Rwanda",
		},
		// Общественные организации
		{
			Name:        "Health Development Initiative (HDI)",
			Type:        entity.ResourceTypeNGO,
			Description: "NGO focused on adolescent reproductive health and education programs.",
			Phone:       "+250 252 571 234",
			Email:       "info@hdi.rw",
			Address:     "KG 15 Ave, Kigali",
			City:        "Kigali",
			Country:     "Rwanda",
			Website:     "https://www.hdi.rw",
		},
		{
			Name:        "Rwandan Association for Family Welfare (ARBEF)",
			Type:        entity.ResourceTypeNGO,
			Description: "Organization providing family planning and reproductive health services.",
			Phone:       "+250 252 570 987",
			Email:       "arbef@rwanda.com",
			Address:     "KN 12 St, Kigali",
			City:        "Kigali",
			Country:     "Rwanda",
		},
		{
			Name:        "Youth Action Rwanda",
			Type:        entity.ResourceTypeNGO,
			Description: "Youth-focused organization providing education and support for teenagers.",
			Phone:       "+250 252 569 876",
			Email:       "info@youthactionrwanda.org",
			Address:     "KG 45 St, Kigali",
			City:        "Kigali",
			Country:     "Rwanda",
			Website:     "https://www.youthactionrwanda.org",
		},
		// Горячие линии
		{
			Name:           "National Mental Health Helpline",
			Type:           entity.ResourceTypeHotline,
			Description:    "24/7 mental health support and crisis intervention services.",
			Phone:          "114",
			City:           "National",
			Country:        "Rwanda",
			IsAvailable247: true,
		},
		{
			Name:           "Teen Support Hotline",
			Type:           entity.ResourceTypeHotline,
			Description:    "Confidential support line for teenagers facing various challenges.",
			Phone:          "+250 788 123 456",
			Email:          "support@teensupport.rw",
			City:           "National",
			Country:        "Rwanda",
			IsAvailable247: true,
		},
		{
			Name:           "Gender-Based Violence Hotline",
			Type:           entity.ResourceTypeHotline,
			Description:    "24/7 support for victims of gender-based violence.",
			Phone:          "3677",
			Email:          "gbv@police.gov.rw",
			City:           "National",
			Country:        "Rwanda",
			Website:        "https://www.police.gov.rw",
			IsAvailable247: true,
		},
		// Консультационные центры
		{
			Name:        "Kigali Counseling Center",
			Type:        entity.ResourceTypeCounselingCenter,
			Description: "Professional counseling services for individuals and families.",
			Phone:       "+250 252 564 321",
			Email:       "counseling@kcc.rw",
			Address:     "KN 23 Ave, Kigali",
			City:        "Kigali",
			Country:     "Rwanda",
		},
		{
			Name:        "Huye Counseling Services",
			Type:        entity.ResourceTypeCounselingCenter,
			Description: "Counseling and psychological support services in Southern Province.",
			Phone:       "+250 252 530 789",
			Email:       "info@huyecounseling.rw",
			Address:     "Main Street, Huye",
			City:        "Huye",
			Country:     "Rwanda",
		},
		{
			Name:        "Musanze Youth Center",
			Type:        entity.ResourceTypeCounselingCenter,
			Description: "Youth counseling and support services in Northern Province.",
			Phone:       "+250 252 546 123",
			Email:       "youth@musanze.gov.rw",
			Address:     "City Center, Musanze",
			City:        "Musanze",
			Country:     "Rwanda",
		},
	}
}
