package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/dbmetrics"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/psqlbuilder"
)

var customerColumns = []string{
	"id",
	"telegram_id",
	"name",
	"phone",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает клиента по Telegram ID или обновляет имя и телефон,
// если они изменились с прошлого бронирования
// Телефон затирается только непустым значением
func (r *Repository) Upsert(ctx context.Context, telegramID, name string, phone *string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("telegram_id", "name", "phone").
		Values(telegramID, name, phone).
		Suffix(`ON CONFLICT (telegram_id) DO UPDATE
			SET name = EXCLUDED.name,
			    phone = COALESCE(EXCLUDED.phone, customers.phone),
			    updated_at = NOW()
			RETURNING ` + columnsList()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	c, err := scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// GetByTelegramID получает клиента по внешнему ключу идентичности
func (r *Repository) GetByTelegramID(ctx context.Context, telegramID string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"telegram_id": telegramID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTelegramID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTelegramID - scan customer: %v", ErrScanRow, err)
	}

	return c, nil
}

// GetByID получает клиента по внутреннему ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %v", ErrScanRow, err)
	}

	return c, nil
}

func columnsList() string {
	return "id, telegram_id, name, phone, created_at, updated_at"
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.TelegramID,
		&c.Name,
		&c.Phone,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
