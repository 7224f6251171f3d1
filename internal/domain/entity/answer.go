package entity

import "time"

// Метки автора ответа для отображения
const (
	AnsweredByExpert    = "expert"
	AnsweredByCommunity = "community"
)

// Answer представляет ответ на анонимный вопрос.
// is_verified выставляется только через путь экспертного ответа (админ-инструмент);
// ответы сообщества всегда создаются с is_verified = false.
type Answer struct {
	ID           uint      `gorm:"primaryKey;column:answer_id" json:"id"`
	QuestionID   uint      `gorm:"not null;index" json:"question_id"`
	Text         string    `gorm:"column:answer_text;type:text;not null" json:"answer_text"`
	IsVerified   bool      `gorm:"not null;default:false" json:"is_verified"`
	HelpfulVotes int       `gorm:"not null;default:0" json:"helpful_votes"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Answer) TableName() string {
	return "anonymous_answers"
}

// AnsweredBy возвращает метку автора для отображения
func (a *Answer) AnsweredBy() string {
	if a.IsVerified {
		return AnsweredByExpert
	}
	return AnsweredByCommunity
}
