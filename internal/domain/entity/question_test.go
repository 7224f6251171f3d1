package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_Status(t *testing.T) {
	// Arrange
	pending := &Question{ID: 1, Username: "maya_k", Text: "How does contraception work?", IsAnswered: false}
	answered := &Question{ID: 2, Username: "maya_k", Text: "Where can I find a clinic?", IsAnswered: true}

	// Act & Assert
	assert.Equal(t, QuestionStatusPending, pending.Status(), "Неотвеченный вопрос должен иметь статус pending")
	assert.Equal(t, QuestionStatusAnswered, answered.Status(), "Отвеченный вопрос должен иметь статус answered")
}

func TestQuestion_IsAskedBy(t *testing.T) {
	// Arrange
	question := &Question{ID: 1, Username: "maya_k"}

	// Act & Assert
	assert.True(t, question.IsAskedBy("maya_k"), "IsAskedBy должен вернуть true для автора вопроса")
	assert.False(t, question.IsAskedBy("other_person"), "IsAskedBy должен вернуть false для другого пользователя")
}

func TestQuestion_TableName(t *testing.T) {
	assert.Equal(t, "anonymous_questions", Question{}.TableName())
}

func TestAnswer_AnsweredBy(t *testing.T) {
	// Arrange
	testCases := []struct {
		name       string
		isVerified bool
		expected   string
	}{
		{"экспертный ответ", true, AnsweredByExpert},
		{"ответ сообщества", false, AnsweredByCommunity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			answer := &Answer{IsVerified: tc.isVerified}
			assert.Equal(t, tc.expected, answer.AnsweredBy())
		})
	}
}

func TestAnswer_TableName(t *testing.T) {
	assert.Equal(t, "anonymous_answers", Answer{}.TableName())
}
