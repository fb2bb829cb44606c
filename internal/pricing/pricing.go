package pricing

import (
	"time"

	"github.com/stpnv0/ParkBooker/internal/config"
)

// Engine считает цену парковки по календарным правилам.
// Чистая функция от диапазона дат, без I/O.
type Engine struct {
	cfg config.PricingConfig
}

func NewEngine(cfg config.PricingConfig) *Engine {
	return &Engine{cfg: cfg}
}

// CalculatePrice возвращает суммарную цену в пенсах за период [from, to).
// Минимум один оплачиваемый день: бронь короче суток считается как один день.
// Порядок дат не проверяется, это контракт вызывающей стороны.
func (e *Engine) CalculatePrice(from, to time.Time) int64 {
	days := daysBetween(from, to)
	if days < 1 {
		days = 1
	}

	var total int64
	day := startOfDay(from)
	for i := 0; i < days; i++ {
		total += e.dailyRate(day)
		day = day.AddDate(0, 0, 1)
	}

	return total
}

func (e *Engine) dailyRate(day time.Time) int64 {
	rate := e.cfg.WeekdayPence
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		rate = e.cfg.WeekendPence
	}

	month := int(day.Month())
	isSummer := month >= e.cfg.SummerStart && month <= e.cfg.SummerEnd
	isWinter := month >= e.cfg.WinterStart && month <= e.cfg.WinterEnd
	if isSummer || isWinter {
		rate += e.cfg.SurchargePence
	}

	return rate
}

func daysBetween(from, to time.Time) int {
	return int(startOfDay(to).Sub(startOfDay(from)) / (24 * time.Hour))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
