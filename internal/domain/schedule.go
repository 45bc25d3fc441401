package domain

import (
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/types"
)

// SlotGrid сетка бронируемых слотов дня: фиксированный шаг от времени
// открытия до последнего стартового слота включительно
// Сетка детерминирована и не зависит от состояния бронирований
type SlotGrid struct {
	OpenTime      types.TimeString // Первый стартовый слот, например "09:00"
	LastSlotStart types.TimeString // Последний стартовый слот включительно, например "23:30"
	StepMinutes   int
}

// DefaultSlotGrid сетка клуба: 30 слотов с 09:00 по 23:30 с шагом 30 минут
func DefaultSlotGrid() SlotGrid {
	return SlotGrid{
		OpenTime:      types.TimeString(DefaultOpenTime),
		LastSlotStart: types.TimeString(DefaultLastSlotStart),
		StepMinutes:   DefaultSlotStepMinutes,
	}
}

// Slots генерирует упорядоченный список стартовых меток слотов
// Пересчитывается на каждый вызов, состояния не хранит
func (g SlotGrid) Slots() ([]types.TimeString, error) {
	if err := g.OpenTime.Validate(); err != nil {
		return nil, err
	}
	if err := g.LastSlotStart.Validate(); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := g.OpenTime

	for !current.IsAfter(g.LastSlotStart) {
		slots = append(slots, current)

		next, err := current.AddMinutes(g.StepMinutes)
		if err != nil {
			return nil, err
		}
		// AddMinutes заворачивается через полночь; выходим, чтобы не зациклиться
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots, nil
}
