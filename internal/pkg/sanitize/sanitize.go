// Package sanitize очищает пользовательский ввод перед сохранением в БД.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

var (
	scriptTagPattern  = regexp.MustCompile(`(?is)<script.*?>.*?</script>`)
	javascriptPattern = regexp.MustCompile(`(?i)javascript:`)
)

// Text экранирует HTML и удаляет потенциально опасные фрагменты.
// Контент выводится только в консоль, но в БД храним уже очищенный текст.
func Text(raw string) string {
	cleaned := scriptTagPattern.ReplaceAllString(raw, "")
	cleaned = javascriptPattern.ReplaceAllString(cleaned, "")
	cleaned = html.EscapeString(cleaned)
	return strings.TrimSpace(cleaned)
}
