package domain

import "time"

// Customer клиент клуба
// Внешним ключом идентичности служит Telegram ID; запись создается при
// первом бронировании и обновляется, если имя или телефон изменились
type Customer struct {
	ID         int64
	TelegramID string
	Name       string
	Phone      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
