package pricing

import (
	"github.com/joseph-ayodele/groupbuy/internal/entity"
)

const (
	// WarningEpsilon is the tolerance for the "limit reached" warning.
	WarningEpsilon = 1e-5
	// GateEpsilon is the tolerance for the per-item add gate.
	GateEpsilon = 1e-9
)

// Quantities is anything that can report a quantity per element id.
type Quantities interface {
	Qty(itemID string) int
}

// Totals are the derived amounts for one cart state, in CAD.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
	LimitCAD  float64 `json:"limitCad"`
	Remaining float64 `json:"remaining"` // unclamped; negative once over the limit
}

// Calc derives totals for the cart. It only reads its inputs.
func Calc(cat *entity.Catalog, q Quantities) Totals {
	var subtotal float64
	for _, it := range cat.Items {
		subtotal += float64(q.Qty(string(it.ElementID))) * it.PriceCADBase
	}
	shipping := subtotal * cat.Meta.ShippingRate
	total := subtotal + shipping
	limit := LimitCAD(cat.Meta)
	return Totals{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     total,
		LimitCAD:  limit,
		Remaining: limit - total,
	}
}

// LimitCAD converts the EUR spend limit to CAD, shipping included.
func LimitCAD(meta entity.Metadata) float64 {
	return meta.SpendLimitEUR * meta.ExchangeRateEURToCAD * (1 + meta.ShippingRate)
}

// DisplayRemaining is the headroom floored at zero for presentation.
func (t Totals) DisplayRemaining() float64 {
	return max(0, t.Remaining)
}

// LimitExceeded reports whether the limit warning should be shown.
func (t Totals) LimitExceeded() bool {
	return t.Remaining < WarningEpsilon
}
