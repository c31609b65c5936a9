package entity

// Receipt is the validated snapshot of a cart plus identity, handed to the
// submission collaborator.
type Receipt struct {
	Timestamp            string        `json:"timestamp"`
	Name                 string        `json:"name"`
	Email                string        `json:"email"`
	ExchangeRateEURToCAD float64       `json:"exchangeRateEurToCad"`
	ShippingRate         float64       `json:"shippingRate"`
	PaymentEmails        []string      `json:"paymentEmails"`
	SpendLimitEUR        float64       `json:"spendLimitEur"`
	SubtotalCADBase      float64       `json:"subtotalCadBase"`
	ShippingCAD          float64       `json:"shippingCad"`
	TotalCAD             float64       `json:"totalCad"`
	Items                []ReceiptLine `json:"items"`
}

// ReceiptLine is one item with a positive quantity.
type ReceiptLine struct {
	ElementID    string  `json:"elementId"`
	DesignID     string  `json:"designId"`
	Color        string  `json:"color"`
	Qty          int     `json:"qty"`
	PriceEUR     float64 `json:"priceEur"`
	PriceCADBase float64 `json:"priceCadBase"`
}
