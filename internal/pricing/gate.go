package pricing

import (
	"github.com/joseph-ayodele/groupbuy/internal/entity"
)

// AddDisabled reports whether adding one more step of it would push the
// cart past the limit. It depends on the whole cart through t.Total, so
// it has to be re-evaluated for every item after any mutation.
func AddDisabled(meta entity.Metadata, t Totals, it entity.Item) bool {
	projected := t.Total + float64(it.QtyStep)*it.PriceCADBase*(1+meta.ShippingRate)
	return projected > t.LimitCAD+GateEpsilon
}

// Gate is the add decision for one item.
type Gate struct {
	ElementID string
	Disabled  bool
}

// Gates evaluates AddDisabled for every item, in catalog order.
// Subtracting is never gated and has no entry here.
func Gates(cat *entity.Catalog, t Totals) []Gate {
	out := make([]Gate, 0, len(cat.Items))
	for _, it := range cat.Items {
		out = append(out, Gate{
			ElementID: string(it.ElementID),
			Disabled:  AddDisabled(cat.Meta, t, it),
		})
	}
	return out
}
