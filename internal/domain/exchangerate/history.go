package exchangerate

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/avestaexchange/avesta/internal/shared/biztime"
)

// Period is a historical chart window.
type Period string

const (
	PeriodWeek    Period = "1W"
	PeriodMonth   Period = "1M"
	PeriodQuarter Period = "3M"
	PeriodYear    Period = "1Y"
)

var periodDays = map[Period]int{
	PeriodWeek:    7,
	PeriodMonth:   30,
	PeriodQuarter: 90,
	PeriodYear:    365,
}

// ParsePeriod accepts 1W, 1M, 3M or 1Y.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if _, ok := periodDays[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return p, nil
}

// Days returns the number of days the period spans.
func (p Period) Days() int {
	return periodDays[p]
}

// HistoricalPoint is one day of a synthesized series.
type HistoricalPoint struct {
	Date string `json:"date"`
	Rate int64  `json:"rate"`
}

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

type defaultSource struct{}

func (defaultSource) Float64() float64 { return rand.Float64() }

// DefaultRandomSource is safe for concurrent use.
var DefaultRandomSource RandomSource = defaultSource{}

const (
	dailyVolatility = 0.005
	maxDeviation    = 0.10
)

// SeriesSynthesizer produces a bounded random walk anchored on a current rate.
// No real history exists; the series is a presentation aid.
type SeriesSynthesizer struct {
	rng RandomSource
}

func NewSeriesSynthesizer(rng RandomSource) *SeriesSynthesizer {
	if rng == nil {
		rng = DefaultRandomSource
	}
	return &SeriesSynthesizer{rng: rng}
}

// Synthesize returns days+1 points, oldest first, ending on today.
// Each step moves the previous value by a uniform walk of up to 0.5% plus the
// current change spread evenly over the window, clamped to within 10% of the
// base rate.
func (s *SeriesSynthesizer) Synthesize(rate ExchangeRate, period Period, today time.Time) []HistoricalPoint {
	days := period.Days()
	if days == 0 {
		return nil
	}

	anchor := rate.BaseRate()
	minRate := anchor * (1 - maxDeviation)
	maxRate := anchor * (1 + maxDeviation)
	trend := (rate.Change() / 100) / float64(days)

	end := biztime.StartOfDay(today)
	points := make([]HistoricalPoint, 0, days+1)
	prev := anchor
	for i := days; i >= 0; i-- {
		walk := (s.rng.Float64()*2 - 1) * dailyVolatility
		prev = clamp(prev*(1+walk+trend), minRate, maxRate)

		points = append(points, HistoricalPoint{
			Date: biztime.FormatDate(end.AddDate(0, 0, -i)),
			Rate: int64(math.Round(prev)),
		})
	}
	return points
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
