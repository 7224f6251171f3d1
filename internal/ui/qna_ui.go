package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/pkg/validate"
	"github.com/yourusername/teen-support/internal/service"

	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// QnAUI — консольный интерфейс анонимных вопросов и ответов
type QnAUI struct {
	term     *Term
	qnaSvc   *service.QnAService
	username string
}

// NewQnAUI создает интерфейс Q&A для вошедшего пользователя
func NewQnAUI(term *Term, qnaSvc *service.QnAService, username string) *QnAUI {
	return &QnAUI{
		term:     term,
		qnaSvc:   qnaSvc,
		username: username,
	}
}

// Run показывает главное меню Q&A
func (u *QnAUI) Run() {
	for {
		u.term.ClearScreen()
		u.term.Header("ANONYMOUS Q&A")
		u.showStats()

		u.term.Section("Choose an option:")
		u.term.MenuOption(1, "Ask a Question")
		u.term.MenuOption(2, "Browse Questions & Answers")
		u.term.MenuOption(3, "Search Questions")
		u.term.MenuOption(4, "My Questions")
		u.term.MenuOption(5, "Browse by Category")
		u.term.MenuOption(6, "How Q&A Works")
		u.term.MenuOption(0, "Back to Main Menu")

		switch u.term.Prompt("\nEnter your choice (0-6): ") {
		case "1":
			u.askQuestion()
		case "2":
			u.browseQuestions("")
		case "3":
			u.searchQuestions()
		case "4":
			u.myQuestions()
		case "5":
			u.browseByCategory()
		case "6":
			u.howItWorks()
		case "0":
			return
		default:
			u.term.Error("Invalid choice. Please try again.")
			u.term.Pause()
		}
	}
}

// showStats печатает живую статистику системы
func (u *QnAUI) showStats() {
	stats, err := u.qnaSvc.GetStats()
	if err != nil {
		u.term.Warn("Statistics are temporarily unavailable.")
		return
	}

	u.term.Section("System Statistics:")
	u.term.Printf("   Total questions: %d\n", stats.TotalQuestions)
	u.term.Printf("   Answered: %d (%.1f%%)\n", stats.AnsweredQuestions, stats.AnsweredPercent)
	u.term.Printf("   Pending: %d\n", stats.PendingQuestions)
	u.term.Printf("   Active users: %d\n", stats.ActiveUsers)
}

func (u *QnAUI) askQuestion() {
	u.term.ClearScreen()
	u.term.Header("ASK YOUR QUESTION")

	u.term.InfoBox("Guidelines", []string{
		"Be specific and clear",
		"Ask one question at a time",
		"Do not share personal identifying information",
		"All questions are anonymous",
	})

	category := u.pickCategory()
	if category == "" {
		return
	}

	u.term.Printf("\nCategory: %s\n", categoryTitle(category))
	u.term.Println(fmt.Sprintf("Type your question (%d-%d characters):",
		validate.MinQuestionLength, validate.MaxQuestionLength))

	text := u.term.Prompt("Your question: ")

	u.term.Section("Question preview:")
	u.term.Separator()
	u.term.Println(WrapText(text, 60))
	u.term.Separator()

	if !u.term.Confirm("Submit this question?") {
		u.term.Warn("Question cancelled.")
		u.term.Pause()
		return
	}

	_, err := u.qnaSvc.SubmitQuestion(u.username, text, category)
	if err != nil {
		u.showError(err)
		u.term.Pause()
		return
	}

	u.term.Success("Question submitted successfully!")
	u.term.Println("Your question will be answered by the community and experts.")
	u.term.Println("Check 'My Questions' for updates.")
	u.term.Pause()
}

// pickCategory показывает категории с живым количеством вопросов.
// Пустая строка означает, что пользователь отказался от выбора.
func (u *QnAUI) pickCategory() string {
	categories, err := u.qnaSvc.GetCategories()
	if err != nil {
		u.showError(err)
		u.term.Pause()
		return ""
	}

	u.term.Section("Available categories:")
	for i, cat := range categories {
		countText := "(new)"
		if cat.QuestionCount > 0 {
			countText = fmt.Sprintf("(%d questions)", cat.QuestionCount)
		}
		u.term.Printf("%d. %s - %s %s\n", i+1, categoryTitle(string(cat.Name)), cat.Description, countText)
	}

	for {
		choice, err := u.term.PromptInt("\nSelect category (number): ")
		if err != nil || choice < 1 || choice > len(categories) {
			u.term.Error("Invalid category. Please try again.")
			continue
		}
		return string(categories[choice-1].Name)
	}
}

func (u *QnAUI) browseQuestions(category string) {
	for {
		u.term.ClearScreen()
		title := "BROWSE QUESTIONS & ANSWERS"
		if category != "" {
			title = fmt.Sprintf("QUESTIONS: %s", strings.ToUpper(categoryTitle(category)))
		}
		u.term.Header(title)

		questions, err := u.qnaSvc.BrowseQuestions(category, 15)
		if err != nil {
			u.showError(err)
			u.term.Pause()
			return
		}

		if len(questions) == 0 {
			u.term.Warn("No answered questions available yet.")
			u.term.Println("Be the first to ask a question!")
			u.term.Pause()
			return
		}

		u.printQuestionList(questions)

		u.term.Section("Options:")
		u.term.Println("- Enter question number to view full Q&A")
		u.term.Println("- Press 'r' to refresh")
		u.term.Println("- Press '0' to go back")

		choice := strings.ToLower(u.term.Prompt("\nYour choice: "))
		switch choice {
		case "0":
			return
		case "r":
			continue
		default:
			num, err := strconv.Atoi(choice)
			if err != nil || num < 1 || num > len(questions) {
				u.term.Error("Please enter a valid number or 'r' to refresh.")
				u.term.Pause()
				continue
			}
			u.viewQuestionDetail(questions[num-1].ID)
		}
	}
}

// viewQuestionDetail показывает вопрос с ответами и обрабатывает голосование.
// После голоса данные перечитываются, чтобы показать обновленные счетчики.
func (u *QnAUI) viewQuestionDetail(questionID uint) {
	for {
		detail, err := u.qnaSvc.GetQuestionWithAnswers(questionID)
		if err != nil {
			u.showError(err)
			u.term.Pause()
			return
		}

		u.term.ClearScreen()
		u.term.Header("QUESTION DETAIL")

		q := detail.Question
		u.term.Printf("[%s] asked %s\n", categoryTitle(string(q.Category)), FormatDate(q.CreatedAt))
		u.term.Separator()
		u.term.Println(WrapText(q.Text, 60))
		u.term.Separator()

		if len(detail.Answers) == 0 {
			u.term.Warn("This question has not been answered yet.")
			if q.Username != u.username && u.term.Confirm("Would you like to answer it?") {
				u.answerQuestion(questionID)
				continue
			}
			return
		}

		u.term.Printf("\n%d answer(s):\n", len(detail.Answers))
		for i, a := range detail.Answers {
			label := "Community"
			if a.IsVerified {
				label = "Expert (verified)"
			}
			u.term.Printf("\n%d. %s • %d helpful • %s\n", i+1, label, a.HelpfulVotes, FormatDate(a.CreatedAt))
			u.term.Println(WrapText(a.Text, 60))
		}

		u.term.Section("Options:")
		u.term.Println("- 'h' to mark the whole thread helpful")
		u.term.Println("- Enter answer number to mark that answer helpful")
		u.term.Println("- 'a' to add your own answer")
		u.term.Println("- '0' to go back")

		choice := strings.ToLower(u.term.Prompt("\nYour choice: "))
		switch choice {
		case "0":
			return
		case "a":
			u.answerQuestion(questionID)
		case "h":
			if err := u.qnaSvc.MarkThreadHelpful(u.username, questionID); err != nil {
				u.showError(err)
			} else {
				u.term.Success("Thanks! All answers marked helpful.")
			}
			u.term.Pause()
		default:
			num, err := strconv.Atoi(choice)
			if err != nil || num < 1 || num > len(detail.Answers) {
				u.term.Error("Invalid choice.")
				u.term.Pause()
				continue
			}
			answerID := detail.Answers[num-1].ID
			if err := u.qnaSvc.MarkAnswerHelpful(u.username, questionID, answerID); err != nil {
				u.showError(err)
			} else {
				u.term.Success("Thanks! Answer marked helpful.")
			}
			u.term.Pause()
		}
	}
}

// answerQuestion принимает ответ сообщества на чужой вопрос
func (u *QnAUI) answerQuestion(questionID uint) {
	u.term.Println(fmt.Sprintf("\nType your answer (%d-%d characters):",
		validate.MinAnswerLength, validate.MaxAnswerLength))
	text := u.term.Prompt("Your answer: ")

	if !u.term.Confirm("Submit this answer?") {
		u.term.Warn("Answer cancelled.")
		u.term.Pause()
		return
	}

	if _, err := u.qnaSvc.SubmitAnswer(u.username, questionID, text); err != nil {
		u.showError(err)
		u.term.Pause()
		return
	}

	u.term.Success("Answer submitted. Thank you for helping!")
	u.term.Pause()
}

func (u *QnAUI) searchQuestions() {
	u.term.ClearScreen()
	u.term.Header("SEARCH QUESTIONS")

	term := u.term.Prompt("Enter search term (min 3 characters): ")

	results, err := u.qnaSvc.SearchQuestions(term, "")
	if err != nil {
		u.showError(err)
		u.term.Pause()
		return
	}

	if len(results) == 0 {
		u.term.Warn("No questions matched your search.")
		u.term.Pause()
		return
	}

	u.term.Printf("\nFound %d question(s):\n\n", len(results))
	u.printQuestionList(results)

	choice := u.term.Prompt("\nEnter question number to view, or '0' to go back: ")
	num, convErr := strconv.Atoi(choice)
	if convErr == nil && num >= 1 && num <= len(results) {
		u.viewQuestionDetail(results[num-1].ID)
	}
}

func (u *QnAUI) myQuestions() {
	u.term.ClearScreen()
	u.term.Header("MY QUESTIONS")

	questions, err := u.qnaSvc.GetUserQuestions(u.username)
	if err != nil {
		u.showError(err)
		u.term.Pause()
		return
	}

	if len(questions) == 0 {
		u.term.Warn("You have not asked any questions yet.")
		u.term.Pause()
		return
	}

	for i, q := range questions {
		status := "PENDING"
		if q.Status == entity.QuestionStatusAnswered {
			status = fmt.Sprintf("ANSWERED (%d)", q.AnswerCount)
		}
		u.term.Printf("%2d. [%s] [%s] %s\n", i+1, status, categoryTitle(string(q.Category)), Truncate(q.Text, 70))
		u.term.Printf("    asked %s\n", FormatDate(q.CreatedAt))
	}

	choice := u.term.Prompt("\nEnter question number to view, or '0' to go back: ")
	num, err := strconv.Atoi(choice)
	if err == nil && num >= 1 && num <= len(questions) {
		u.viewQuestionDetail(questions[num-1].ID)
	}
}

func (u *QnAUI) browseByCategory() {
	category := u.pickCategory()
	if category == "" {
		return
	}
	u.browseQuestions(category)
}

func (u *QnAUI) howItWorks() {
	u.term.ClearScreen()
	u.term.Header("HOW Q&A WORKS")

	u.term.InfoBox("Anonymous Q&A", []string{
		"Questions are fully anonymous: no names are shown",
		"Community members and verified experts answer",
		"Expert answers are marked and shown first",
		"Mark answers helpful to promote the best ones",
		"You cannot vote on answers to your own question",
	})
	u.term.Pause()
}

func (u *QnAUI) printQuestionList(questions []service.QuestionSummary) {
	for i, q := range questions {
		u.term.Printf("%2d. [%s] %s\n", i+1, categoryTitle(string(q.Category)), Truncate(q.Text, 70))
		plural := "s"
		if q.AnswerCount == 1 {
			plural = ""
		}
		u.term.Printf("    %d answer%s • %s\n\n", q.AnswerCount, plural, FormatDate(q.CreatedAt))
	}
}

// showError переводит ошибки сервисов в понятные пользователю сообщения
func (u *QnAUI) showError(err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		u.term.Error(userMessage(err))
	case errors.Is(err, apperrors.ErrForbidden):
		u.term.Error(userMessage(err))
	case errors.Is(err, apperrors.ErrNotFound):
		u.term.Error("Not found.")
	case errors.Is(err, apperrors.ErrUnavailable):
		u.term.Error("The service is temporarily unavailable. Please try again later.")
	default:
		u.term.Error("Something went wrong. Please try again.")
	}
}

// userMessage убирает префикс сентинельной ошибки из текста
func userMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

// categoryTitle превращает machine-имя категории в заголовок
func categoryTitle(category string) string {
	words := strings.Split(strings.ReplaceAll(category, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
