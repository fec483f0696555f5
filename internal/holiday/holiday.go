package holiday

import (
	"github.com/shopspring/decimal"

	"go-payops/internal/compensation"
	"go-payops/internal/shared/civil"
)

// Source records where a resolved holiday came from.
type Source string

const (
	SourceExternal  Source = "external"
	SourceGenerated Source = "generated"
)

// Holiday is one resolved public holiday for a year. Lists are immutable
// once resolved; a year is regenerated, never mutated in place.
type Holiday struct {
	Date          civil.Date               `json:"date"`
	Name          string                   `json:"name"`
	LocalName     string                   `json:"local_name,omitempty"`
	Type          compensation.HolidayType `json:"type"`
	PayMultiplier decimal.Decimal          `json:"pay_multiplier"`
	IsApproximate bool                     `json:"is_approximate"`
	Source        Source                   `json:"source"`
}
