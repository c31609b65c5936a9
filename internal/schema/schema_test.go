package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestCheckReceipt(t *testing.T) {
	ok := `{"timestamp":"2026-10-16T14:03:07.250Z","name":"Ada","email":"a@b.com",
		"exchangeRateEurToCad":1.5,"shippingRate":0.08,"paymentEmails":null,"spendLimitEur":100,
		"subtotalCadBase":9,"shippingCad":0.72,"totalCad":9.72,
		"items":[{"elementId":"300121","designId":"3001","color":"Red","qty":50,"priceEur":0.12,"priceCadBase":0.18}]}`
	assert.NoError(t, CheckReceipt(decode(t, ok)))

	zeroQty := `{"timestamp":"t","name":"Ada","email":"a@b.com","subtotalCadBase":0,"shippingCad":0,"totalCad":0,
		"items":[{"elementId":"1","designId":"2","color":"c","qty":0,"priceEur":1,"priceCadBase":1}]}`
	assert.Error(t, CheckReceipt(decode(t, zeroQty)))

	fractionalQty := `{"timestamp":"t","name":"Ada","email":"a@b.com","subtotalCadBase":0,"shippingCad":0,"totalCad":0,
		"items":[{"elementId":"1","designId":"2","color":"c","qty":1.5,"priceEur":1,"priceCadBase":1}]}`
	assert.Error(t, CheckReceipt(decode(t, fractionalQty)))

	noName := `{"timestamp":"t","email":"a@b.com","subtotalCadBase":0,"shippingCad":0,"totalCad":0,"items":[]}`
	assert.Error(t, CheckReceipt(decode(t, noName)))
}

func TestCheckCatalog_IdentTypes(t *testing.T) {
	doc := `{"items":[{"elementId":300121,"designId":"3001","color":"c","name":"n","priceEur":1,"priceCadBase":1,"qtyStep":5}],
		"meta":{"shippingRate":0.08,"exchangeRateEurToCad":1.5,"spendLimitEur":100,"testAllowedEmail":"a@b.com"}}`
	assert.NoError(t, CheckCatalog([]byte(doc)))

	badID := `{"items":[{"elementId":true,"designId":"3001","color":"c","name":"n","priceEur":1,"priceCadBase":1,"qtyStep":5}],
		"meta":{"shippingRate":0.08,"exchangeRateEurToCad":1.5,"spendLimitEur":100,"testAllowedEmail":"a@b.com"}}`
	assert.Error(t, CheckCatalog([]byte(badID)))
}

func TestCheckCatalog_NotJSON(t *testing.T) {
	assert.ErrorContains(t, CheckCatalog([]byte("nope")), "decode catalog")
}

func TestSchemasCompileOnce(t *testing.T) {
	a, err := catalogSchema()
	require.NoError(t, err)
	b, err := catalogSchema()
	require.NoError(t, err)
	assert.Same(t, a, b)

	r, err := receiptSchema()
	require.NoError(t, err)
	assert.NotSame(t, a, r)
}
