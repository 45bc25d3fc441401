package station

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/dbmetrics"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/psqlbuilder"
)

var stationColumns = []string{
	"id",
	"label",
	"zone_id",
	"status",
	"specs",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со станциями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория станций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает станцию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stationColumns...).
		From("stations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	st, err := scanStation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan station: %v", ErrScanRow, err)
	}

	return st, nil
}

// ListBookable получает активные станции, опционально отфильтрованные по зоне
// Порядок стабилен: по зоне, затем по метке
func (r *Repository) ListBookable(ctx context.Context, zoneID *int64) ([]*domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(stationColumns...).
		From("stations").
		Where(squirrel.Eq{"status": domain.StationActive}).
		OrderBy("zone_id ASC, label ASC")

	if zoneID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"zone_id": *zoneID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stations := make([]*domain.Station, 0)
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBookable - scan row: %v", ErrScanRow, err)
		}
		stations = append(stations, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookable - rows error: %v", ErrScanRow, err)
	}

	return stations, nil
}

// UpdateStatus переводит станцию в новый операционный статус
// Единственный способ изменения станции после создания инвентаря
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.StationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("stations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStation(row rowScanner) (*domain.Station, error) {
	var st domain.Station
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&st.ID,
		&st.Label,
		&st.ZoneID,
		&st.Status,
		&st.Specs,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	st.CreatedAt = createdAt.Time
	st.UpdatedAt = updatedAt.Time

	return &st, nil
}
