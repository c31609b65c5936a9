package export

import (
	"iter"
	"strconv"

	"github.com/joseph-ayodele/groupbuy/internal/entity"
	"github.com/joseph-ayodele/groupbuy/internal/order"
	"github.com/joseph-ayodele/groupbuy/internal/pricing"
)

const (
	CSVFilename  = "newfoundlug_bulk_test_order.csv"
	XLSXFilename = "newfoundlug_bulk_test_order.xlsx"
)

// Header is the first record of every export.
var Header = []string{
	"timestamp",
	"name",
	"email",
	"elementId",
	"designId",
	"color",
	"qty",
	"priceEur",
	"priceCadBase",
	"lineTotalCadBase",
}

// Rows yields the header followed by one record per item with a positive
// quantity, in catalog order. The sequence holds no state and can be
// ranged over any number of times.
func Rows(cat *entity.Catalog, q pricing.Quantities, name, email, ts string) iter.Seq[[]string] {
	name, email = order.NormalizeIdentity(name, email)
	return func(yield func([]string) bool) {
		if !yield(append([]string(nil), Header...)) {
			return
		}
		for _, it := range cat.Items {
			qty := q.Qty(string(it.ElementID))
			if qty <= 0 {
				continue
			}
			rec := []string{
				ts,
				name,
				email,
				string(it.ElementID),
				string(it.DesignID),
				it.Color,
				strconv.Itoa(qty),
				formatNumber(it.PriceEUR),
				formatNumber(it.PriceCADBase),
				formatNumber(float64(qty) * it.PriceCADBase),
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// shortest round-trip form: 10, 1.5, 0.045
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
