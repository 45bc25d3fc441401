package zones

import (
	"context"
	"fmt"
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/service/zones/models"
)

// Service сервис для работы с зонами клуба
type Service struct {
	zoneRepo        ZoneRepository
	tariffRepo      TariffRepository
	stationRepo     StationRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса зон
func NewService(
	zoneRepo ZoneRepository,
	tariffRepo TariffRepository,
	stationRepo StationRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		zoneRepo:        zoneRepo,
		tariffRepo:      tariffRepo,
		stationRepo:     stationRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ListZones возвращает активные зоны с их тарифами в порядке сортировки
func (s *Service) ListZones(ctx context.Context) (*models.ZoneListResponse, error) {
	s.logger.Info("ListZones: fetching active zones")

	zones, err := s.zoneRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListZones: failed to list zones: %v", err)
		return nil, fmt.Errorf("%w: ListZones - repository error: %v", ErrInternal, err)
	}

	zoneIDs := make([]int64, 0, len(zones))
	for _, z := range zones {
		zoneIDs = append(zoneIDs, z.ID)
	}

	rules, err := s.tariffRepo.GetByZoneIDs(ctx, zoneIDs)
	if err != nil {
		s.logger.Error("ListZones: failed to get tariff rules: %v", err)
		return nil, fmt.Errorf("%w: ListZones - repository error: %v", ErrInternal, err)
	}

	rulesByZone := make(map[int64][]*domain.TariffRule, len(zones))
	for _, r := range rules {
		rulesByZone[r.ZoneID] = append(rulesByZone[r.ZoneID], r)
	}

	resp := &models.ZoneListResponse{
		Zones: make([]models.ZoneResponse, 0, len(zones)),
	}
	for _, z := range zones {
		resp.Zones = append(resp.Zones, *models.FromDomainZone(z, rulesByZone[z.ID]))
	}

	s.logger.Info("ListZones: successfully fetched %d zones", len(resp.Zones))
	return resp, nil
}

// GetSummary возвращает занятость зон на текущий момент
// Станция занята, если какое-то активное бронирование идет прямо сейчас
func (s *Service) GetSummary(ctx context.Context) (*models.SummaryResponse, error) {
	s.logger.Info("GetSummary: building zone occupancy summary")

	zones, err := s.zoneRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("GetSummary: failed to list zones: %v", err)
		return nil, fmt.Errorf("%w: GetSummary - repository error: %v", ErrInternal, err)
	}

	stations, err := s.stationRepo.ListBookable(ctx, nil)
	if err != nil {
		s.logger.Error("GetSummary: failed to list stations: %v", err)
		return nil, fmt.Errorf("%w: GetSummary - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := day.AddDate(0, 0, 1)

	stationIDs := make([]int64, 0, len(stations))
	for _, st := range stations {
		stationIDs = append(stationIDs, st.ID)
	}

	reservations := make([]*domain.Reservation, 0)
	if len(stationIDs) > 0 {
		reservations, err = s.reservationRepo.GetActiveByStationsAndRange(ctx, stationIDs, day, dayEnd)
		if err != nil {
			s.logger.Error("GetSummary: failed to get reservations: %v", err)
			return nil, fmt.Errorf("%w: GetSummary - repository error: %v", ErrInternal, err)
		}
	}

	occupied := make(map[int64]bool)
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		if !now.Before(r.StartTime) && now.Before(r.EndTime) {
			occupied[r.StationID] = true
		}
	}

	totalByZone := make(map[int64]int)
	busyByZone := make(map[int64]int)
	for _, st := range stations {
		totalByZone[st.ZoneID]++
		if occupied[st.ID] {
			busyByZone[st.ZoneID]++
		}
	}

	resp := &models.SummaryResponse{
		Zones:       make([]models.ZoneSummary, 0, len(zones)),
		GeneratedAt: now,
	}

	for _, z := range zones {
		total := totalByZone[z.ID]
		busy := busyByZone[z.ID]

		rate := 0.0
		if total > 0 {
			rate = float64(busy) / float64(total)
		}

		resp.Zones = append(resp.Zones, models.ZoneSummary{
			ZoneID:            z.ID,
			Name:              z.Name,
			DisplayName:       z.DisplayName,
			TotalStations:     total,
			AvailableStations: total - busy,
			OccupancyRate:     rate,
		})
	}

	s.logger.Info("GetSummary: summary built for %d zones", len(resp.Zones))
	return resp, nil
}
