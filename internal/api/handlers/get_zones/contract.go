package get_zones

import (
	"context"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/service/zones/models"
)

type ZoneService interface {
	ListZones(ctx context.Context) (*models.ZoneListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
