package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/teen-support/internal/domain/entity"
)

// StatsRepo реализует repository.StatsRepository
type StatsRepo struct {
	db *gorm.DB
}

// NewStatsRepo создает новый репозиторий системных счетчиков
func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// IncrementStat увеличивает счетчик на delta, создавая запись при отсутствии
func (r *StatsRepo) IncrementStat(name string, delta int64) error {
	return r.db.Exec(`
		INSERT INTO system_stats (stat_name, stat_value)
		VALUES (?, ?)
		ON CONFLICT (stat_name) DO UPDATE
		SET stat_value = system_stats.stat_value + EXCLUDED.stat_value
	`, name, delta).Error
}

// GetStat возвращает значение счетчика; 0 для несуществующего имени
func (r *StatsRepo) GetStat(name string) (int64, error) {
	var stat entity.SystemStat
	err := r.db.Where("stat_name = ?", name).First(&stat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return stat.StatValue, nil
}
