package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Цветовые стили консоли
var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	sectionColor = color.New(color.FgCyan)
	promptColor  = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	accentColor  = color.New(color.FgMagenta)
	boldColor    = color.New(color.Bold)
)

// Term инкапсулирует ввод и вывод консоли.
// Тесты подменяют reader и writer на буферы.
type Term struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewTerm создает терминал поверх указанных потоков
func NewTerm(in io.Reader, out io.Writer) *Term {
	return &Term{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// ClearScreen очищает экран ANSI-последовательностью
func (t *Term) ClearScreen() {
	fmt.Fprint(t.writer, "\033[2J\033[H")
}

// Header печатает заголовок раздела с разделителями
func (t *Term) Header(title string) {
	fmt.Fprintln(t.writer)
	headerColor.Fprintln(t.writer, title)
	fmt.Fprintln(t.writer, strings.Repeat("=", 60))
}

// Separator печатает горизонтальный разделитель
func (t *Term) Separator() {
	fmt.Fprintln(t.writer, strings.Repeat("-", 60))
}

// Section печатает подзаголовок
func (t *Term) Section(text string) {
	fmt.Fprintln(t.writer)
	sectionColor.Fprintln(t.writer, text)
}

// MenuOption печатает пункт меню
func (t *Term) MenuOption(number int, label string) {
	fmt.Fprintf(t.writer, "%d. %s\n", number, label)
}

// Println печатает обычную строку
func (t *Term) Println(text string) {
	fmt.Fprintln(t.writer, text)
}

// Printf печатает форматированную строку
func (t *Term) Printf(format string, args ...interface{}) {
	fmt.Fprintf(t.writer, format, args...)
}

// Success печатает сообщение об успехе
func (t *Term) Success(text string) {
	successColor.Fprintf(t.writer, "OK %s\n", text)
}

// Warn печатает предупреждение
func (t *Term) Warn(text string) {
	warnColor.Fprintf(t.writer, "! %s\n", text)
}

// Error печатает сообщение об ошибке
func (t *Term) Error(text string) {
	errorColor.Fprintf(t.writer, "X %s\n", text)
}

// InfoBox печатает рамку с набором строк
func (t *Term) InfoBox(title string, lines []string) {
	fmt.Fprintln(t.writer)
	accentColor.Fprintf(t.writer, "+-- %s\n", title)
	for _, line := range lines {
		accentColor.Fprintf(t.writer, "| %s\n", line)
	}
	accentColor.Fprintln(t.writer, "+--")
}

// Prompt запрашивает строку у пользователя
func (t *Term) Prompt(label string) string {
	promptColor.Fprintf(t.writer, "%s", label)
	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// PromptInt запрашивает целое число; при неверном вводе возвращает ошибку
func (t *Term) PromptInt(label string) (int, error) {
	raw := t.Prompt(label)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("please enter a valid number")
	}
	return value, nil
}

// Confirm запрашивает подтверждение y/n
func (t *Term) Confirm(label string) bool {
	answer := strings.ToLower(t.Prompt(label + " (y/n): "))
	return answer == "y" || answer == "yes"
}

// Pause ждет нажатия Enter
func (t *Term) Pause() {
	t.Prompt("\nPress Enter to continue...")
}

// WrapText переносит текст по словам под ширину консоли
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}

// Truncate обрезает строку до limit символов с многоточием
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// FormatDate возвращает относительную дату для недавних событий
// и абсолютную для событий старше недели
func FormatDate(at time.Time) string {
	if at.IsZero() {
		return "unknown"
	}

	elapsed := time.Since(at)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		minutes := int(elapsed.Minutes())
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	case elapsed < 24*time.Hour:
		hours := int(elapsed.Hours())
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case elapsed < 7*24*time.Hour:
		days := int(elapsed.Hours() / 24)
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	default:
		return at.Format("2006-01-02")
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
