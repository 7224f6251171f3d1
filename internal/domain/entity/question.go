package entity

import "time"

// Статусы вопроса, производные от флага is_answered
const (
	QuestionStatusAnswered = "answered"
	QuestionStatusPending  = "pending"
)

// Question представляет анонимный вопрос пользователя
type Question struct {
	ID         uint      `gorm:"primaryKey;column:question_id" json:"id"`
	Username   string    `gorm:"size:20;not null;index" json:"username"`
	Text       string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	Category   Category  `gorm:"size:32;not null;default:general" json:"category"`
	IsAnswered bool      `gorm:"not null;default:false" json:"is_answered"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "anonymous_questions"
}

// Status возвращает строковый статус для отображения
func (q *Question) Status() string {
	if q.IsAnswered {
		return QuestionStatusAnswered
	}
	return QuestionStatusPending
}

// IsAskedBy проверяет, задан ли вопрос указанным пользователем.
// Используется для запрета голосования за ответы на собственный вопрос.
func (q *Question) IsAskedBy(username string) bool {
	return q.Username == username
}
