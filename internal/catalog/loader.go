package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joseph-ayodele/groupbuy/internal/common"
	"github.com/joseph-ayodele/groupbuy/internal/entity"
	"github.com/joseph-ayodele/groupbuy/internal/schema"
)

// Parse validates a catalog document and decodes it.
// A document that fails here is a load-time precondition violation.
func Parse(data []byte) (*entity.Catalog, error) {
	if err := schema.CheckCatalog(data); err != nil {
		return nil, common.NewAppError("CATALOG_INVALID", "catalog document is malformed", err)
	}
	var cat entity.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, common.NewAppError("CATALOG_INVALID", "catalog document is malformed", err)
	}
	seen := make(map[entity.Ident]struct{}, len(cat.Items))
	for _, it := range cat.Items {
		if _, dup := seen[it.ElementID]; dup {
			return nil, common.NewAppError("CATALOG_INVALID",
				fmt.Sprintf("duplicate elementId %q", it.ElementID), common.ErrInvalidInput)
		}
		seen[it.ElementID] = struct{}{}
	}
	return &cat, nil
}

// LoadFile reads and parses a catalog from disk.
func LoadFile(path string, logger *slog.Logger) (*entity.Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		logger.Error("catalog.load.invalid", "path", path, "error", err)
		return nil, err
	}
	logger.Info("catalog.load.ok", "path", path, "items", len(cat.Items))
	return cat, nil
}

// Fetch downloads and parses a catalog, bypassing any HTTP cache.
func Fetch(ctx context.Context, client *http.Client, url string, logger *slog.Logger) (*entity.Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("catalog.fetch.send_error", "url", url, "error", err)
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logger.Warn("catalog.fetch.response_body_close_error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("fetch catalog: non-2xx status: %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog body: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog.fetch.ok", "url", url, "items", len(cat.Items), "elapsed_ms", time.Since(start).Milliseconds())
	return cat, nil
}
