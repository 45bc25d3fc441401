// Package pricing расчет стоимости бронирования по тарифам зоны
package pricing

import (
	"time"

	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
)

// Quote результат расчета стоимости
// Все денежные значения в минорных единицах валюты
type Quote struct {
	Base            int64 // Стоимость по выбранному тарифному правилу
	Extras          int64 // Доплата за дополнительные джойстики
	Total           int64
	RuleID          int64
	RuleName        string
	RuleKind        domain.TariffKind
	IsWeekend       bool
	DurationMinutes int
}

// Calculate подбирает самое дешевое применимое тарифное правило и считает
// итоговую стоимость интервала [start, end)
//
// Кандидаты: все почасовые правила (цена = ставка * длительность) и пакетные
// правила, чья минимальная длительность достигнута (фиксированная цена)
// Если ни один кандидат не подошел - откат на почасовое правило зоны;
// если нет и его - ошибка конфигурации ErrNoTariff
//
// Денежная арифметика целочисленная: почасовой итог = ставка * минуты / 60
func Calculate(
	rules []*domain.TariffRule,
	start, end time.Time,
	extraJoysticks int,
	window WeekendWindow,
	joystickPrice int64,
) (*Quote, error) {
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}

	durationMinutes := int(end.Sub(start) / time.Minute)
	isWeekend := window.Applies(start, end)

	var bestRule *domain.TariffRule
	var bestPrice int64

	for _, rule := range rules {
		if !rule.QualifiesFor(durationMinutes) {
			continue
		}

		price := rulePrice(rule, isWeekend, durationMinutes)
		if bestRule == nil || price < bestPrice {
			bestRule = rule
			bestPrice = price
		}
	}

	// Откат на почасовое правило, если ни один кандидат не подошел
	// (QualifiesFor почасовых правил всегда true, поэтому сюда попадаем
	// только когда у зоны одни пакетные правила с недостигнутым порогом)
	if bestRule == nil {
		for _, rule := range rules {
			if rule.Kind == domain.TariffHourly {
				bestRule = rule
				bestPrice = rulePrice(rule, isWeekend, durationMinutes)
				break
			}
		}
	}

	if bestRule == nil {
		return nil, ErrNoTariff
	}

	extras := int64(extraJoysticks) * joystickPrice

	return &Quote{
		Base:            bestPrice,
		Extras:          extras,
		Total:           bestPrice + extras,
		RuleID:          bestRule.ID,
		RuleName:        bestRule.Name,
		RuleKind:        bestRule.Kind,
		IsWeekend:       isWeekend,
		DurationMinutes: durationMinutes,
	}, nil
}

// rulePrice стоимость интервала по конкретному правилу
func rulePrice(rule *domain.TariffRule, isWeekend bool, durationMinutes int) int64 {
	rate := rule.RateFor(isWeekend)
	if rule.Kind == domain.TariffPackage {
		return rate
	}
	return rate * int64(durationMinutes) / 60
}
