package schema

// Catalog returns the JSON-Schema the catalog document must satisfy.
func Catalog() map[string]any {
	item := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"elementId":            identProp(),
			"designId":             identProp(),
			"color":                map[string]any{"type": "string"},
			"name":                 map[string]any{"type": "string"},
			"imageUrl":             map[string]any{"type": "string"},
			"priceEur":             map[string]any{"type": "number", "minimum": 0},
			"priceCadBase":         map[string]any{"type": "number", "minimum": 0},
			"priceCadWithShipping": map[string]any{"type": "number", "minimum": 0},
			"qtyStep":              map[string]any{"type": "integer", "minimum": 1},
		},
		"required": []string{"elementId", "designId", "color", "name", "priceEur", "priceCadBase", "qtyStep"},
	}
	meta := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"shippingRate":         map[string]any{"type": "number", "minimum": 0},
			"exchangeRateEurToCad": map[string]any{"type": "number", "exclusiveMinimum": 0},
			"spendLimitEur":        map[string]any{"type": "number", "exclusiveMinimum": 0},
			"testAllowedEmail":     map[string]any{"type": "string", "minLength": 1},
			"paymentEmails":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"submitEndpoint":       map[string]any{"type": "string"},
		},
		"required": []string{"shippingRate", "exchangeRateEurToCad", "spendLimitEur", "testAllowedEmail"},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{"type": "array", "items": item},
			"meta":  meta,
		},
		"required": []string{"items", "meta"},
	}
}

// element and design ids show up both quoted and bare in published catalogs
func identProp() map[string]any {
	return map[string]any{"type": []string{"string", "integer"}}
}
