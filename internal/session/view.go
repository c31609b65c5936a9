package session

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joseph-ayodele/groupbuy/internal/entity"
	"github.com/joseph-ayodele/groupbuy/internal/pricing"
)

// View is everything the rendering layer needs after a mutation.
type View struct {
	Totals        pricing.Totals
	LimitExceeded bool
	Items         []ItemView

	Subtotal  string
	Shipping  string
	Total     string
	Remaining string // floored at zero
	Limit     string
}

// ItemView is one catalog card.
type ItemView struct {
	Item        entity.Item
	Qty         int
	AddDisabled bool
}

// FormatCAD renders an amount in Canadian dollars.
func FormatCAD(v float64) string {
	return message.NewPrinter(language.English).Sprint(currency.Symbol(currency.CAD.Amount(v)))
}

func buildView(cat *entity.Catalog, q pricing.Quantities) View {
	t := pricing.Calc(cat, q)
	gates := pricing.Gates(cat, t)

	items := make([]ItemView, len(cat.Items))
	for i, it := range cat.Items {
		items[i] = ItemView{
			Item:        it,
			Qty:         q.Qty(string(it.ElementID)),
			AddDisabled: gates[i].Disabled,
		}
	}
	return View{
		Totals:        t,
		LimitExceeded: t.LimitExceeded(),
		Items:         items,
		Subtotal:      FormatCAD(t.Subtotal),
		Shipping:      FormatCAD(t.Shipping),
		Total:         FormatCAD(t.Total),
		Remaining:     FormatCAD(t.DisplayRemaining()),
		Limit:         FormatCAD(t.LimitCAD),
	}
}
