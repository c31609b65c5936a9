package submit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/groupbuy/internal/common"
	"github.com/joseph-ayodele/groupbuy/internal/entity"
)

func sampleReceipt() *entity.Receipt {
	return &entity.Receipt{
		Timestamp:            "2026-10-16T12:00:00.000Z",
		Name:                 "Ada",
		Email:                "a@b.com",
		ExchangeRateEURToCAD: 1.5,
		ShippingRate:         0.08,
		PaymentEmails:        []string{"pay@example.com"},
		SpendLimitEUR:        100,
		SubtotalCADBase:      9,
		ShippingCAD:          0.72,
		TotalCAD:             9.72,
		Items: []entity.ReceiptLine{
			{ElementID: "300121", DesignID: "3001", Color: "Bright Red", Qty: 50, PriceEUR: 0.12, PriceCADBase: 0.18},
		},
	}
}

func TestSubmit_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-42", r.Header.Get("X-Request-ID"))

		var got entity.Receipt
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Ada", got.Name)
		require.Len(t, got.Items, 1)
		assert.Equal(t, 50, got.Items[0].Qty)
		assert.Equal(t, "300121", got.Items[0].ElementID)
		assert.InDelta(t, 9.72, got.TotalCAD, 1e-12)

		_, _ = w.Write([]byte(`{"ok":true,"rowsAdded":1}`))
	}))
	defer srv.Close()

	ctx := common.WithRequestID(context.Background(), "req-42")
	resp, err := NewHTTPSubmitter(srv.Client(), nil).Submit(ctx, srv.URL, sampleReceipt())
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, 1, resp.RowsAdded)
}

func TestSubmit_RejectionDecodedOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error":"sheet locked"}`))
	}))
	defer srv.Close()

	resp, err := NewHTTPSubmitter(srv.Client(), nil).Submit(context.Background(), srv.URL, sampleReceipt())
	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, "sheet locked", resp.Error)
}

func TestSubmit_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>login required</html>`))
	}))
	defer srv.Close()

	_, err := NewHTTPSubmitter(srv.Client(), nil).Submit(context.Background(), srv.URL, sampleReceipt())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestSubmit_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSubmitter(nil, nil).Submit(context.Background(), url, sampleReceipt())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestSubmit_GeneratesRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"ok":true,"rowsAdded":1}`))
	}))
	defer srv.Close()

	_, err := NewHTTPSubmitter(srv.Client(), nil).Submit(context.Background(), srv.URL, sampleReceipt())
	require.NoError(t, err)
	_, err = uuid.Parse(got)
	assert.NoError(t, err)
}
