package get_zone_summary

import (
	"context"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/service/zones/models"
)

type ZoneService interface {
	GetSummary(ctx context.Context) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
