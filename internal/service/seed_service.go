package service

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/domain/repository"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// SeedService загружает демонстрационные данные Q&A для ручного тестирования.
// В отличие от модулей и ресурсов это не рабочий контент, поэтому
// загрузка выполняется только явной админ-командой.
type SeedService struct {
	userRepo     repository.UserRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	statsRepo    repository.StatsRepository
}

// NewSeedService создает сервис демонстрационных данных
func NewSeedService(
	userRepo repository.UserRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	statsRepo repository.StatsRepository,
) *SeedService {
	return &SeedService{
		userRepo:     userRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		statsRepo:    statsRepo,
	}
}

type sampleQuestion struct {
	username string
	text     string
	category entity.Category
	answers  []sampleAnswer
}

type sampleAnswer struct {
	text         string
	verified     bool
	helpfulVotes int
}

// LoadSampleData создает демонстрационных пользователей, вопросы и ответы.
// Если в системе уже есть вопросы, загрузка пропускается.
func (s *SeedService) LoadSampleData() error {
	stats, err := s.questionRepo.Stats()
	if err != nil {
		log.Printf("[SeedService] Ошибка проверки наличия вопросов: %v", err)
		return fmt.Errorf("%w: не удалось проверить наличие вопросов", apperrors.ErrUnavailable)
	}
	if stats.TotalQuestions > 0 {
		log.Printf("[SeedService] Вопросы уже есть, демонстрационные данные не загружаются")
		return nil
	}

	if err := s.ensureSampleUsers(); err != nil {
		return err
	}

	questions := sampleQuestions()
	for _, sq := range questions {
		question := &entity.Question{
			Username:   sq.username,
			Text:       sq.text,
			Category:   sq.category,
			IsAnswered: len(sq.answers) > 0,
		}
		if err := s.questionRepo.Create(question); err != nil {
			log.Printf("[SeedService] Ошибка создания демонстрационного вопроса: %v", err)
			return fmt.Errorf("%w: не удалось создать демонстрационный вопрос", apperrors.ErrUnavailable)
		}

		for _, sa := range sq.answers {
			answer := &entity.Answer{
				QuestionID:   question.ID,
				Text:         sa.text,
				IsVerified:   sa.verified,
				HelpfulVotes: sa.helpfulVotes,
			}
			if err := s.answerRepo.Create(answer); err != nil {
				log.Printf("[SeedService] Ошибка создания демонстрационного ответа: %v", err)
				return fmt.Errorf("%w: не удалось создать демонстрационный ответ", apperrors.ErrUnavailable)
			}
		}
	}

	if err := s.statsRepo.IncrementStat(entity.StatTotalQuestionsAsked, int64(len(questions))); err != nil {
		// Данные уже загружены, счетчик не критичен
		log.Printf("[SeedService] Ошибка обновления счетчика вопросов: %v", err)
	}

	log.Printf("[SeedService] Загружено демонстрационных вопросов: %d", len(questions))
	return nil
}

// ensureSampleUsers создает демонстрационных пользователей, пропуская занятые имена.
// Имена содержат служебное слово test и поэтому недоступны при обычной регистрации.
func (s *SeedService) ensureSampleUsers() error {
	now := time.Now()
	users := []entity.User{
		{Username: "testuser1", Age: 16, LastLogin: now, IsActive: true},
		{Username: "testuser2", Age: 17, LastLogin: now, IsActive: true},
		{Username: "testuser3", Age: 18, LastLogin: now, IsActive: true},
	}

	for _, u := range users {
		taken, err := s.userRepo.Exists(u.Username)
		if err != nil {
			log.Printf("[SeedService] Ошибка проверки имени %s: %v", u.Username, err)
			return fmt.Errorf("%w: не удалось проверить имя", apperrors.ErrUnavailable)
		}
		if taken {
			continue
		}
		user := u
		if err := s.userRepo.Create(&user); err != nil {
			log.Printf("[SeedService] Ошибка создания пользователя %s: %v", u.Username, err)
			return fmt.Errorf("%w: не удалось создать демонстрационного пользователя", apperrors.ErrUnavailable)
		}
	}
	return nil
}

func sampleQuestions() []sampleQuestion {
	return []sampleQuestion{
		{
			username: "testuser1",
			text:     "What are the most reliable methods of birth control for teenagers? I want to understand all my options and their effectiveness rates.",
			category: entity.CategoryHealth,
			answers: []sampleAnswer{
				{
					text:         "The most effective reversible methods for teenagers include IUDs (over 99% effective) and implants (over 99% effective). Birth control pills are 91% effective with typical use, but 99% with perfect use. Condoms are important because they also prevent STIs - they are 85% effective with typical use. Always consult with a healthcare provider at a local clinic to find what works best for your situation and health needs.",
					verified:     true,
					helpfulVotes: 15,
				},
				{
					text:         "I used birth control pills for 2 years and they worked well for me. The key is taking them at the same time every day. Also, always use condoms too for STI protection. You can get free consultations at University Teaching Hospital or local health centers.",
					helpfulVotes: 8,
				},
			},
		},
		{
			username: "testuser2",
			text:     "How do I know if I might be pregnant? What are the early signs I should look out for?",
			category: entity.CategoryHealth,
			answers: []sampleAnswer{
				{
					text:         "Early pregnancy signs include: missed period (most common), nausea or morning sickness, breast tenderness and swelling, fatigue, frequent urination, and food aversions. However, these symptoms can have other causes. The only way to know for sure is to take a pregnancy test 1-2 weeks after a missed period. Free, confidential testing is available at health centers across Kigali.",
					verified:     true,
					helpfulVotes: 22,
				},
				{
					text:         "I experienced nausea and breast tenderness before I even missed my period. But every person is different. Get a test done at a clinic - they are private and the staff is very understanding.",
					helpfulVotes: 5,
				},
			},
		},
		{
			username: "testuser3",
			text:     "Where can I get free and confidential reproductive health services in Kigali? I need help but want to keep it private.",
			category: entity.CategoryResources,
			answers: []sampleAnswer{
				{
					text:         "In Kigali, you can access free reproductive health services at: University Teaching Hospital (CHUK), Kigali Health Institute, local health centers in each district, and NGOs like Health Development Initiative (HDI). All services are confidential. You can also call the Ministry of Health hotline for guidance. Many clinics have special youth-friendly hours.",
					verified:     true,
					helpfulVotes: 18,
				},
				{
					text:         "I went to the health center in Nyarugenge district and the staff was very respectful and private. They have a special youth clinic on Thursdays. You can also visit Family Planning clinics - they are free for people under 20.",
					helpfulVotes: 12,
				},
			},
		},
		{
			username: "testuser1",
			text:     "I think my boyfriend is pressuring me into having sex. How do I handle this situation?",
			category: entity.CategoryEmotionalSupport,
			answers: []sampleAnswer{
				{
					text:         "This is a serious concern. You have the right to say no to any sexual activity you are not comfortable with. A loving partner respects your boundaries. Consider talking to a trusted adult, counselor, or calling a support hotline. Organizations like Polyclinic of Hope offer confidential counseling. Remember: consent must be freely given, ongoing, and can be withdrawn at any time.",
					verified:     true,
					helpfulVotes: 25,
				},
				{
					text:         "I was in a similar situation. I talked to a counselor at my school and they helped me understand that real love means respecting boundaries. You deserve someone who respects your choices. There are people who can help you through this.",
					helpfulVotes: 14,
				},
			},
		},
		{
			username: "testuser2",
			text:     "What should I do if a condom breaks during sex? I am really worried and need advice urgently.",
			category: entity.CategoryHealth,
			answers: []sampleAnswer{
				{
					text:         "If a condom breaks: 1) Do not panic, 2) Consider emergency contraception (morning-after pill) - most effective within 72 hours but can work up to 120 hours, 3) Get tested for STIs after the window period, 4) Visit a health center immediately for emergency contraception and advice. Emergency contraception is available at pharmacies and health centers in Kigali.",
					verified:     true,
					helpfulVotes: 31,
				},
				{
					text:         "This happened to me once. I went to a pharmacy the next morning and got the morning-after pill. The pharmacist was very professional and discrete. Do not wait - the sooner you take it, the more effective it is.",
					helpfulVotes: 9,
				},
			},
		},
		{
			username: "testuser3",
			text:     "Are there any support groups for teenage mothers in Rwanda? I recently found out I am pregnant.",
			category: entity.CategoryResources,
		},
		{
			username: "testuser1",
			text:     "How can I talk to my parents about reproductive health? I feel too embarrassed to bring it up.",
			category: entity.CategoryEmotionalSupport,
			answers: []sampleAnswer{
				{
					text:         "Start small - maybe ask general questions about growing up or mention something you learned in health class. Choose a calm moment when you have privacy. You could also ask a trusted adult like an aunt, teacher, or counselor to help facilitate the conversation. Remember, most parents want to help even if the topic feels awkward. You could also write a letter if talking feels too difficult.",
					verified:     true,
					helpfulVotes: 16,
				},
				{
					text:         "I started by asking my mom about her teenage years and then gradually brought up more specific topics. It was awkward at first but she appreciated that I trusted her. Now we can talk about anything. Take it slow and be patient.",
					helpfulVotes: 11,
				},
			},
		},
		{
			username: "testuser2",
			text:     "What are the risks of teenage pregnancy? I want to understand all the health implications.",
			category: entity.CategoryHealth,
			answers: []sampleAnswer{
				{
					text:         "Teenage pregnancy carries higher risks including: preeclampsia, anemia, premature birth, low birth weight babies, and higher risk of maternal mortality. Educational and economic impacts include interrupted schooling and reduced future opportunities. However, with proper prenatal care, many risks can be managed. If you are pregnant, seek medical care early and consistently. Support services are available through health centers and NGOs.",
					verified:     true,
					helpfulVotes: 20,
				},
				{
					text:         "My sister had her baby at 17. With good medical care and family support, both she and the baby are healthy. The key is getting prenatal care early and having a support system. There are programs to help young mothers continue their education too.",
					helpfulVotes: 7,
				},
			},
		},
	}
}
