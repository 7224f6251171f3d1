package entity

// Имена счетчиков системной статистики
const (
	StatTotalQuestionsAsked = "total_questions_asked"
)

// SystemStat — универсальный счетчик системной статистики.
// Обновляется по схеме "insert or add-to-existing-value" (upsert с инкрементом).
type SystemStat struct {
	StatName  string `gorm:"primaryKey;size:64" json:"stat_name"`
	StatValue int64  `gorm:"not null;default:0" json:"stat_value"`
}

// TableName определяет имя таблицы для GORM
func (SystemStat) TableName() string {
	return "system_stats"
}
