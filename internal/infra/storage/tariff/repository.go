package tariff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/dbmetrics"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/psqlbuilder"
)

var tariffColumns = []string{
	"id",
	"zone_id",
	"kind",
	"name",
	"weekday_price",
	"weekend_price",
	"min_duration_minutes",
}

// Repository репозиторий для работы с тарифными правилами
// Тарифы read-only: создаются при настройке инвентаря, сервис их не меняет
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByZoneID получает все тарифные правила зоны
// Пустой список не ошибка на уровне хранилища: решение об отсутствии
// тарифа принимает калькулятор цены
func (r *Repository) GetByZoneID(ctx context.Context, zoneID int64) ([]*domain.TariffRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tariffColumns...).
		From("tariff_rules").
		Where(squirrel.Eq{"zone_id": zoneID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByZoneID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByZoneID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// GetByZoneIDs получает тарифные правила набора зон одним запросом
// Используется листингом зон с тарифами
func (r *Repository) GetByZoneIDs(ctx context.Context, zoneIDs []int64) ([]*domain.TariffRule, error) {
	if len(zoneIDs) == 0 {
		return []*domain.TariffRule{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tariffColumns...).
		From("tariff_rules").
		Where(squirrel.Eq{"zone_id": zoneIDs}).
		OrderBy("zone_id ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByZoneIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByZoneIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRules(rows)
}

func scanRules(rows *sql.Rows) ([]*domain.TariffRule, error) {
	rules := make([]*domain.TariffRule, 0)

	for rows.Next() {
		var rule domain.TariffRule

		err := rows.Scan(
			&rule.ID,
			&rule.ZoneID,
			&rule.Kind,
			&rule.Name,
			&rule.WeekdayPrice,
			&rule.WeekendPrice,
			&rule.MinDurationMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan row: %v", ErrScanRow, err)
		}

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
