package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joseph-ayodele/groupbuy/internal/catalog"
	"github.com/joseph-ayodele/groupbuy/internal/common"
	"github.com/joseph-ayodele/groupbuy/internal/entity"
	"github.com/joseph-ayodele/groupbuy/internal/export"
	"github.com/joseph-ayodele/groupbuy/internal/order"
	"github.com/joseph-ayodele/groupbuy/internal/session"
	"github.com/joseph-ayodele/groupbuy/internal/submit"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

type addFlags []string

func (a *addFlags) String() string     { return strings.Join(*a, ",") }
func (a *addFlags) Set(v string) error { *a = append(*a, v); return nil }

func main() {
	cfg := common.LoadConfig()

	var adds addFlags
	var (
		catalogSrc = flag.String("catalog", cfg.Orders.CatalogPath, "catalog file path or http(s) URL")
		cartPath   = flag.String("cart", "", "JSON file mapping elementId to quantity (optional)")
		name       = flag.String("name", "", "buyer name")
		email      = flag.String("email", "", "buyer email")
		csvOut     = flag.String("csv", "", "write CSV export to this path")
		xlsxOut    = flag.String("xlsx", "", "write XLSX export to this path")
		doSubmit   = flag.Bool("submit", false, "submit the order to the catalog's endpoint")
	)
	flag.Var(&adds, "add", "add one step of elementId (repeatable)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cat, err := loadCatalog(ctx, *catalogSrc, logger)
	if err != nil {
		printError("Error: loading catalog: %v\n", err)
		os.Exit(1)
	}

	sess := session.New(cat, submit.NewHTTPSubmitter(&http.Client{Timeout: cfg.Orders.SubmitTimeout}, logger), logger)

	if *cartPath != "" {
		if err := restoreCart(sess, *cartPath); err != nil {
			printError("Error: loading cart: %v\n", err)
			os.Exit(1)
		}
	}
	for _, id := range adds {
		if err := sess.Add(id); err != nil {
			printError("Warning: %v\n", err)
		}
	}

	printView(sess.View())

	*csvOut = defaultCSV(*csvOut, *xlsxOut, *doSubmit)
	if *csvOut != "" {
		if err := writeFile(*csvOut, func(f *os.File) error { return sess.ExportCSV(f, *name, *email) }); err != nil {
			printError("Error: writing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("CSV written to %s\n", *csvOut)
	}
	if *xlsxOut != "" {
		if err := writeFile(*xlsxOut, func(f *os.File) error { return sess.ExportXLSX(f, *name, *email) }); err != nil {
			printError("Error: writing XLSX: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("XLSX written to %s\n", *xlsxOut)
	}

	if *doSubmit {
		subCtx, cancel := context.WithTimeout(ctx, cfg.Orders.SubmitTimeout)
		defer cancel()
		out := sess.Submit(subCtx, *name, *email)
		fmt.Println(out.Message)
		if out.Kind != order.OutcomeSubmitted {
			os.Exit(1)
		}
	}
}

func loadCatalog(ctx context.Context, src string, logger *slog.Logger) (*entity.Catalog, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return catalog.Fetch(ctx, nil, src, logger)
	}
	return catalog.LoadFile(src, logger)
}

func restoreCart(sess *session.Session, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var qty map[string]int
	if err := json.Unmarshal(data, &qty); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	for id, q := range qty {
		if err := sess.SetQty(id, q); err != nil {
			return err
		}
	}
	return nil
}

// defaultCSV picks the CSV path. With nothing else requested the run writes
// the CSV under its usual export name.
func defaultCSV(csvOut, xlsxOut string, doSubmit bool) string {
	if csvOut == "" && xlsxOut == "" && !doSubmit {
		return export.CSVFilename
	}
	return csvOut
}

// writeFile creates path and fills it with fn. A failed write never leaves a
// truncated export behind.
func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = fn(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}

func printView(v session.View) {
	for _, it := range v.Items {
		if it.Qty == 0 && !it.AddDisabled {
			continue
		}
		mark := ""
		if it.AddDisabled {
			mark = " (at limit)"
		}
		fmt.Printf("%-10s %-24s qty %5d%s\n", it.Item.ElementID, it.Item.Color, it.Qty, mark)
	}
	fmt.Printf("Subtotal:  %s\n", v.Subtotal)
	fmt.Printf("Shipping:  %s\n", v.Shipping)
	fmt.Printf("Total:     %s\n", v.Total)
	fmt.Printf("Remaining: %s of %s\n", v.Remaining, v.Limit)
	if v.LimitExceeded {
		fmt.Println("Spend limit reached.")
	}
}
