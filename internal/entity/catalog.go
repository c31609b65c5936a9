package entity

import (
	"encoding/json"
)

// Item represents one purchasable catalog entry.
type Item struct {
	ElementID            Ident   `json:"elementId"`
	DesignID             Ident   `json:"designId"`
	Color                string  `json:"color"`
	Name                 string  `json:"name"`
	ImageURL             string  `json:"imageUrl"`
	PriceEUR             float64 `json:"priceEur"`
	PriceCADBase         float64 `json:"priceCadBase"`
	PriceCADWithShipping float64 `json:"priceCadWithShipping"` // informational only
	QtyStep              int     `json:"qtyStep"`
}

// Metadata holds the values shared by every item in a catalog.
type Metadata struct {
	ShippingRate         float64  `json:"shippingRate"`
	ExchangeRateEURToCAD float64  `json:"exchangeRateEurToCad"`
	SpendLimitEUR        float64  `json:"spendLimitEur"`
	TestAllowedEmail     string   `json:"testAllowedEmail"`
	PaymentEmails        []string `json:"paymentEmails"`
	SubmitEndpoint       string   `json:"submitEndpoint"`
}

// Catalog is the read-only document loaded once per session.
type Catalog struct {
	Items []Item   `json:"items"`
	Meta  Metadata `json:"meta"`
}

// Item returns the catalog entry with the given element id.
func (c *Catalog) Item(id string) (Item, bool) {
	for _, it := range c.Items {
		if string(it.ElementID) == id {
			return it, true
		}
	}
	return Item{}, false
}

// Ident is a catalog identifier. Source documents carry element and design
// ids either as strings or as bare numbers; both decode to the same string.
type Ident string

func (i *Ident) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*i = Ident(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*i = Ident(n.String())
	return nil
}

func (i Ident) String() string { return string(i) }

