package order

import (
	"strings"
	"time"

	"github.com/joseph-ayodele/groupbuy/internal/entity"
	"github.com/joseph-ayodele/groupbuy/internal/pricing"
)

// TimestampLayout matches a JavaScript Date.toISOString value.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NormalizeIdentity trims the name and trims and lower-cases the email.
func NormalizeIdentity(name, email string) (string, string) {
	return strings.TrimSpace(name), strings.ToLower(strings.TrimSpace(email))
}

// Validate checks identity in order and stops at the first failure.
func Validate(meta entity.Metadata, name, email string) error {
	name, email = NormalizeIdentity(name, email)
	if name == "" {
		return ErrMissingName
	}
	if email == "" {
		return ErrMissingEmail
	}
	if email != strings.ToLower(strings.TrimSpace(meta.TestAllowedEmail)) {
		return &EmailNotAllowedError{Allowed: meta.TestAllowedEmail}
	}
	return nil
}

// Build validates identity and assembles a receipt from the live cart.
// Totals are recomputed here; a previously displayed Totals is never reused.
func Build(cat *entity.Catalog, q pricing.Quantities, name, email string, now time.Time) (*entity.Receipt, error) {
	if err := Validate(cat.Meta, name, email); err != nil {
		return nil, err
	}
	name, email = NormalizeIdentity(name, email)

	lines := make([]entity.ReceiptLine, 0, len(cat.Items))
	for _, it := range cat.Items {
		qty := q.Qty(string(it.ElementID))
		if qty <= 0 {
			continue
		}
		lines = append(lines, entity.ReceiptLine{
			ElementID:    string(it.ElementID),
			DesignID:     string(it.DesignID),
			Color:        it.Color,
			Qty:          qty,
			PriceEUR:     it.PriceEUR,
			PriceCADBase: it.PriceCADBase,
		})
	}
	totals := pricing.Calc(cat, q)

	return &entity.Receipt{
		Timestamp:            now.UTC().Format(TimestampLayout),
		Name:                 name,
		Email:                email,
		ExchangeRateEURToCAD: cat.Meta.ExchangeRateEURToCAD,
		ShippingRate:         cat.Meta.ShippingRate,
		PaymentEmails:        cat.Meta.PaymentEmails,
		SpendLimitEUR:        cat.Meta.SpendLimitEUR,
		SubtotalCADBase:      totals.Subtotal,
		ShippingCAD:          totals.Shipping,
		TotalCAD:             totals.Total,
		Items:                lines,
	}, nil
}
