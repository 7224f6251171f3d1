package entity

import (
	"regexp"
	"strings"
	"time"
)

// Допустимый возраст пользователей системы
const (
	MinUserAge = 13
	MaxUserAge = 19
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// reservedUsernames — базовый фильтр служебных имен
var reservedUsernames = []string{"admin", "root", "test", "user", "guest", "anonymous"}

// User представляет пользователя с псевдонимной аутентификацией по имени.
// Пароля нет намеренно: имя пользователя не содержит персональных данных.
type User struct {
	Username  string    `gorm:"primaryKey;size:20" json:"username"`
	Age       int       `gorm:"not null" json:"age"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
}

// TableName определяет имя таблицы для GORM
func (User) TableName() string {
	return "users"
}

// ValidAge проверяет, входит ли возраст в допустимый диапазон 13-19
func ValidAge(age int) bool {
	return age >= MinUserAge && age <= MaxUserAge
}

// ValidUsername проверяет формат имени пользователя:
// 3-20 символов, буквы/цифры/подчеркивание, начинается с буквы,
// не содержит зарезервированных слов.
func ValidUsername(username string) bool {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 20 {
		return false
	}
	if !usernamePattern.MatchString(username) {
		return false
	}
	lower := strings.ToLower(username)
	for _, word := range reservedUsernames {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return true
}
