package service

import (
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/teen-support/internal/domain/repository"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// ExportService выгружает данные Q&A в xlsx для офлайн-анализа
type ExportService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

// NewExportService создает новый сервис выгрузок
func NewExportService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
) *ExportService {
	return &ExportService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

// ExportQuestions выгружает отвеченные вопросы с ответами и сводную
// статистику в xlsx-файл по указанному пути
func (s *ExportService) ExportQuestions(path string, limit int) error {
	if limit <= 0 {
		limit = 1000
	}

	rows, err := s.questionRepo.BrowseAnswered("", limit)
	if err != nil {
		log.Printf("[ExportService] Ошибка получения вопросов для выгрузки: %v", err)
		return fmt.Errorf("%w: не удалось получить вопросы", apperrors.ErrUnavailable)
	}

	stats, err := s.questionRepo.Stats()
	if err != nil {
		log.Printf("[ExportService] Ошибка получения статистики для выгрузки: %v", err)
		return fmt.Errorf("%w: не удалось получить статистику", apperrors.ErrUnavailable)
	}

	f := excelize.NewFile()
	defer f.Close()

	const questionsSheet = "Questions"
	const answersSheet = "Answers"
	const statsSheet = "Stats"

	f.SetSheetName(f.GetSheetName(0), questionsSheet)

	headers := []string{"ID", "Category", "Status", "Question", "Answers", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(questionsSheet, cell, h)
	}

	for i, row := range rows {
		line := i + 2
		f.SetCellValue(questionsSheet, fmt.Sprintf("A%d", line), row.ID)
		f.SetCellValue(questionsSheet, fmt.Sprintf("B%d", line), string(row.Category))
		status := "pending"
		if row.IsAnswered {
			status = "answered"
		}
		f.SetCellValue(questionsSheet, fmt.Sprintf("C%d", line), status)
		f.SetCellValue(questionsSheet, fmt.Sprintf("D%d", line), row.Text)
		f.SetCellValue(questionsSheet, fmt.Sprintf("E%d", line), row.AnswerCount)
		f.SetCellValue(questionsSheet, fmt.Sprintf("F%d", line), row.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Лист с ответами
	if _, err := f.NewSheet(answersSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	answerHeaders := []string{"Question ID", "Answer ID", "Answered By", "Helpful Votes", "Answer", "Created"}
	for i, h := range answerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(answersSheet, cell, h)
	}

	line := 2
	for _, row := range rows {
		answers, err := s.answerRepo.GetByQuestionID(row.ID)
		if err != nil {
			log.Printf("[ExportService] Ошибка получения ответов вопроса %d: %v", row.ID, err)
			return fmt.Errorf("%w: не удалось получить ответы", apperrors.ErrUnavailable)
		}
		for i := range answers {
			a := &answers[i]
			f.SetCellValue(answersSheet, fmt.Sprintf("A%d", line), a.QuestionID)
			f.SetCellValue(answersSheet, fmt.Sprintf("B%d", line), a.ID)
			f.SetCellValue(answersSheet, fmt.Sprintf("C%d", line), a.AnsweredBy())
			f.SetCellValue(answersSheet, fmt.Sprintf("D%d", line), a.HelpfulVotes)
			f.SetCellValue(answersSheet, fmt.Sprintf("E%d", line), a.Text)
			f.SetCellValue(answersSheet, fmt.Sprintf("F%d", line), a.CreatedAt.Format("2006-01-02 15:04"))
			line++
		}
	}

	// Сводная статистика
	if _, err := f.NewSheet(statsSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	statRows := [][]interface{}{
		{"Metric", "Value"},
		{"Total questions", stats.TotalQuestions},
		{"Answered questions", stats.AnsweredQuestions},
		{"Pending questions", stats.PendingQuestions},
		{"Total answers", stats.TotalAnswers},
		{"Active users", stats.ActiveUsers},
		{"Exported at", time.Now().Format("2006-01-02 15:04:05")},
	}
	for i, pair := range statRows {
		f.SetCellValue(statsSheet, fmt.Sprintf("A%d", i+1), pair[0])
		f.SetCellValue(statsSheet, fmt.Sprintf("B%d", i+1), pair[1])
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save export file: %w", err)
	}

	log.Printf("[ExportService] Выгрузка сохранена: %s (%d вопросов)", path, len(rows))
	return nil
}
