package export

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/groupbuy/internal/cart"
	"github.com/joseph-ayodele/groupbuy/internal/entity"
)

const ts = "2026-10-16T14:03:07.250Z"

func testCatalog() *entity.Catalog {
	return &entity.Catalog{
		Items: []entity.Item{
			{ElementID: "300121", DesignID: "3001", Color: "Bright Red", PriceEUR: 0.12, PriceCADBase: 0.18, QtyStep: 50},
			{ElementID: "4211088", DesignID: "3023", Color: "Medium Stone Grey", PriceEUR: 0.03, PriceCADBase: 0.045, QtyStep: 100},
			{ElementID: "6284070", DesignID: "3069", Color: `O"Ring`, PriceEUR: 0.5, PriceCADBase: 10, QtyStep: 5},
		},
		Meta: entity.Metadata{ShippingRate: 0.08, ExchangeRateEURToCAD: 1.5, SpendLimitEUR: 100, TestAllowedEmail: "a@b.com"},
	}
}

func TestRows_HeaderAndCatalogOrder(t *testing.T) {
	c := cart.New()
	c.SetQty("6284070", 5)
	c.SetQty("300121", 50)

	rows := slices.Collect(Rows(testCatalog(), c, " Ada ", " A@B.com", ts))
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{ts, "Ada", "a@b.com", "300121", "3001", "Bright Red", "50", "0.12", "0.18", "9"}, rows[1])
	assert.Equal(t, []string{ts, "Ada", "a@b.com", "6284070", "3069", `O"Ring`, "5", "0.5", "10", "50"}, rows[2])
}

func TestRows_Restartable(t *testing.T) {
	c := cart.New()
	c.SetQty("300121", 100)
	seq := Rows(testCatalog(), c, "Ada", "a@b.com", ts)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	// stopping early is honored
	n := 0
	for range seq {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestRows_EmptyCart(t *testing.T) {
	rows := slices.Collect(Rows(testCatalog(), cart.New(), "Ada", "a@b.com", ts))
	require.Len(t, rows, 1)
	assert.Equal(t, Header, rows[0])
}

func TestWriteCSV_QuotesEveryField(t *testing.T) {
	c := cart.New()
	c.SetQty("6284070", 5)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Rows(testCatalog(), c, "Ada", "a@b.com", ts)))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"timestamp","name","email","elementId","designId","color","qty","priceEur","priceCadBase","lineTotalCadBase"`, lines[0])
	assert.Equal(t, `"`+ts+`","Ada","a@b.com","6284070","3069","O""Ring","5","0.5","10","50"`, lines[1])
	assert.False(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestWriteXLSX(t *testing.T) {
	c := cart.New()
	c.SetQty("300121", 50)
	c.SetQty("6284070", 10)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Rows(testCatalog(), c, "Ada", "a@b.com", ts)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got, err := f.GetRows("Order")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, Header, got[0])
	assert.Equal(t, "300121", got[1][3])
	assert.Equal(t, `O"Ring`, got[2][5])
	assert.Equal(t, "100", got[2][9])
}

func TestService_CSV(t *testing.T) {
	s := NewService(nil)
	s.now = func() time.Time { return time.Date(2026, 10, 16, 14, 3, 7, 250_000_000, time.UTC) }

	c := cart.New()
	c.SetQty("4211088", 100)
	var buf bytes.Buffer
	require.NoError(t, s.CSV(&buf, testCatalog(), c, "Ada", "a@b.com"))
	assert.Contains(t, buf.String(), `"`+ts+`","Ada","a@b.com","4211088","3023","Medium Stone Grey","100","0.03","0.045","4.5"`)
}
