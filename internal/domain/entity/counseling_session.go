package entity

import "time"

// Статусы консультационной сессии
const (
	SessionStatusScheduled   = "scheduled"
	SessionStatusCompleted   = "completed"
	SessionStatusCancelled   = "cancelled"
	SessionStatusRescheduled = "rescheduled"
)

// AnonymousClientName подставляется, если пользователь не захотел указывать имя
const AnonymousClientName = "Anonymous"

// CounselingSession представляет запись на консультацию
type CounselingSession struct {
	ID            uint      `gorm:"primaryKey;column:session_id" json:"id"`
	Username      string    `gorm:"size:20;not null;index" json:"username"`
	ClientName    string    `gorm:"size:255;not null" json:"client_name"`
	Topic         string    `gorm:"type:text;not null" json:"topic"`
	PreferredDate time.Time `gorm:"type:date;not null" json:"preferred_date"`
	Status        string    `gorm:"size:16;not null;default:scheduled" json:"status"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (CounselingSession) TableName() string {
	return "counseling_sessions"
}

// IsEditable проверяет, можно ли редактировать сессию.
// Завершенные сессии не редактируются.
func (s *CounselingSession) IsEditable() bool {
	return s.Status != SessionStatusCompleted
}

// ValidSessionStatus проверяет, входит ли статус в допустимый набор
func ValidSessionStatus(status string) bool {
	switch status {
	case SessionStatusScheduled, SessionStatusCompleted, SessionStatusCancelled, SessionStatusRescheduled:
		return true
	}
	return false
}
