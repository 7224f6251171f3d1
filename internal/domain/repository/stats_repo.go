package repository

// StatsRepository определяет методы для работы с системными счетчиками
type StatsRepository interface {
	// IncrementStat увеличивает счетчик на delta, создавая запись при отсутствии
	// (upsert с инкрементом, не перезапись)
	IncrementStat(name string, delta int64) error

	GetStat(name string) (int64, error)
}
