package reservation

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

var reservationColumns = []string{
	"id",
	"station_id",
	"customer_id",
	"start_time",
	"end_time",
	"status",
	"total_price",
	"extra_joysticks",
	"notes",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value),
// использует её - так проверка доступности и вставка выполняются атомарно
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"station_id",
			"customer_id",
			"start_time",
			"end_time",
			"status",
			"total_price",
			"extra_joysticks",
			"notes",
		).
		Values(
			res.StationID,
			res.CustomerID,
			res.StartTime,
			res.EndTime,
			res.Status,
			res.TotalPrice,
			res.ExtraJoysticks,
			res.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetActiveByStationAndRange получает активные бронирования станции,
// пересекающиеся с интервалом [from, to)
//
// Если в контексте есть транзакция, строки блокируются через FOR UPDATE -
// так конкурентная проверка доступности того же интервала будет ждать
// завершения текущей транзакции (защита от двойного бронирования)
func (r *Repository) GetActiveByStationAndRange(ctx context.Context, stationID int64, from, to time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"station_id": stationID}).
		Where(squirrel.Eq{"status": domain.ReservationActive}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByStationAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByStationAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetActiveByStationsAndRange получает активные бронирования набора станций,
// пересекающиеся с интервалом [from, to)
// Используется для построения сетки доступности на день
func (r *Repository) GetActiveByStationsAndRange(ctx context.Context, stationIDs []int64, from, to time.Time) ([]*domain.Reservation, error) {
	if len(stationIDs) == 0 {
		return []*domain.Reservation{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"station_id": stationIDs}).
		Where(squirrel.Eq{"status": domain.ReservationActive}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("station_id ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByStationsAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByStationsAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByCustomerID получает бронирования клиента, новые первыми
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Cancel переводит бронирование в статус cancelled
// Физическое удаление бронирований не поддерживается - история сохраняется
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.ReservationCancelled).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в модель бронирования
func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.StationID,
		&res.CustomerID,
		&res.StartTime,
		&res.EndTime,
		&res.Status,
		&res.TotalPrice,
		&res.ExtraJoysticks,
		&res.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
