package timezone

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Converter переводит время суток между именованными зонами с
// фиксированными смещениями от UTC (без учёта DST).
//
// Конвертация работает только с временем суток: перенос через полночь
// НЕ двигает календарную дату. Бронирование около полуночи, которое при
// конвертации пересекает границу дня, остаётся на исходной дате —
// известное ограничение модели, закреплённое тестами.
type Converter struct {
	offsets map[string]int // смещение от UTC в минутах
	labels  map[string]string
}

// Zone описание зоны для выдачи клиенту
type Zone struct {
	Code  string
	Label string
}

// NewConverter создает конвертер со стандартной таблицей зон
func NewConverter() *Converter {
	return &Converter{
		offsets: map[string]int{
			"UTC": 0,
			"EST": -5 * 60,
			"PST": -8 * 60,
			"IST": 5*60 + 30,
		},
		labels: map[string]string{
			"UTC": "UTC (GMT+0)",
			"EST": "EST (GMT-5)",
			"PST": "PST (GMT-8)",
			"IST": "IST (GMT+5:30)",
		},
	}
}

const minutesPerDay = 24 * 60

// Convert переводит время t из зоны from в зону to.
// Неизвестная зона — ошибка контракта: возвращается ErrInvalidTimezone,
// исходное время никогда не передается дальше молча.
func (c *Converter) Convert(t types.TimeString, from, to string) (types.TimeString, error) {
	fromOffset, ok := c.offsets[from]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimezone, from)
	}
	toOffset, ok := c.offsets[to]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimezone, to)
	}

	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}

	minutes += toOffset - fromOffset

	// Нормализация в [0, 1440): перенос через полночь остается в пределах суток
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay

	return types.FromMinutes(minutes)
}

// IsKnown проверяет, что зона есть в таблице
func (c *Converter) IsKnown(zone string) bool {
	_, ok := c.offsets[zone]
	return ok
}

// Zones возвращает список известных зон, отсортированный по коду
func (c *Converter) Zones() []Zone {
	zones := make([]Zone, 0, len(c.labels))
	for code, label := range c.labels {
		zones = append(zones, Zone{Code: code, Label: label})
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].Code < zones[j].Code })
	return zones
}
