package zone

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/dbmetrics"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/psqlbuilder"
)

var zoneColumns = []string{
	"id",
	"name",
	"display_name",
	"description",
	"color",
	"sort_order",
	"active",
}

// Repository репозиторий для работы с зонами клуба
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория зон
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает зону по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Zone, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(zoneColumns...).
		From("zones").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	z, err := scanZone(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrZoneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan zone: %v", ErrScanRow, err)
	}

	return z, nil
}

// ListActive получает активные зоны в порядке сортировки
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Zone, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(zoneColumns...).
		From("zones").
		Where(squirrel.Eq{"active": true}).
		OrderBy("sort_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	zones := make([]*domain.Zone, 0)
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		zones = append(zones, z)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return zones, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanZone(row rowScanner) (*domain.Zone, error) {
	var z domain.Zone

	err := row.Scan(
		&z.ID,
		&z.Name,
		&z.DisplayName,
		&z.Description,
		&z.Color,
		&z.SortOrder,
		&z.Active,
	)
	if err != nil {
		return nil, err
	}

	return &z, nil
}
