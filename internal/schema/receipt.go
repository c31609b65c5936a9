package schema

// Receipt returns the JSON-Schema for a submitted order receipt.
func Receipt() map[string]any {
	line := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"elementId":    map[string]any{"type": "string", "minLength": 1},
			"designId":     map[string]any{"type": "string"},
			"color":        map[string]any{"type": "string"},
			"qty":          map[string]any{"type": "integer", "minimum": 1},
			"priceEur":     map[string]any{"type": "number", "minimum": 0},
			"priceCadBase": map[string]any{"type": "number", "minimum": 0},
		},
		"required": []string{"elementId", "designId", "color", "qty", "priceEur", "priceCadBase"},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"timestamp":            map[string]any{"type": "string", "minLength": 1},
			"name":                 map[string]any{"type": "string", "minLength": 1},
			"email":                map[string]any{"type": "string", "minLength": 3},
			"exchangeRateEurToCad": map[string]any{"type": "number", "exclusiveMinimum": 0},
			"shippingRate":         map[string]any{"type": "number", "minimum": 0},
			"paymentEmails":        map[string]any{"type": []string{"array", "null"}, "items": map[string]any{"type": "string"}},
			"spendLimitEur":        map[string]any{"type": "number", "exclusiveMinimum": 0},
			"subtotalCadBase":      money(),
			"shippingCad":          money(),
			"totalCad":             money(),
			"items":                map[string]any{"type": "array", "items": line},
		},
		"required": []string{"timestamp", "name", "email", "subtotalCadBase", "shippingCad", "totalCad", "items"},
	}
}

func money() map[string]any {
	return map[string]any{"type": "number", "minimum": 0}
}
