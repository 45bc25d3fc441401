package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/dbmetrics"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/psqlbuilder"
)

// Repository репозиторий календаря особых дней
// Зарезервированная точка расширения тарифов: данные хранятся и читаются,
// но ценообразование их пока не учитывает
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает активный особый день на указанную дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.CalendarException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	query, args, err := psqlbuilder.Select("id", "date", "type", "active").
		From("calendar_exceptions").
		Where(squirrel.Eq{"date": dateOnly}).
		Where(squirrel.Eq{"active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var exc domain.CalendarException
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&exc.ID,
		&exc.Date,
		&exc.Type,
		&exc.Active,
	)

	if err == sql.ErrNoRows {
		return nil, ErrExceptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan exception: %v", ErrScanRow, err)
	}

	return &exc, nil
}

// Create сохраняет особый день
func (r *Repository) Create(ctx context.Context, exc *domain.CalendarException) (*domain.CalendarException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_exceptions").
		Columns("date", "type", "active").
		Values(exc.Date, exc.Type, exc.Active).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exc.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return exc, nil
}
