package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/joseph-ayodele/groupbuy/internal/common"
	"github.com/joseph-ayodele/groupbuy/internal/entity"
)

// ErrTransport marks failures to deliver a receipt or to read a reply.
var ErrTransport = errors.New("submission transport failure")

// Response is the collaborator's structured reply.
type Response struct {
	OK        bool   `json:"ok"`
	RowsAdded int    `json:"rowsAdded"`
	Error     string `json:"error,omitempty"`
}

// Submitter delivers a receipt to an endpoint and returns the reply.
// Any error it returns wraps ErrTransport.
type Submitter interface {
	Submit(ctx context.Context, endpoint string, receipt *entity.Receipt) (*Response, error)
}

// HTTPSubmitter posts receipts as JSON.
type HTTPSubmitter struct {
	client *http.Client
	logger *slog.Logger
}

func NewHTTPSubmitter(client *http.Client, logger *slog.Logger) *HTTPSubmitter {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPSubmitter{client: client, logger: logger}
}

// Submit sends one request, no retry. The reply body is decoded whatever the
// HTTP status, since the endpoint reports rejections as {ok:false,error}.
func (s *HTTPSubmitter) Submit(ctx context.Context, endpoint string, receipt *entity.Receipt) (*Response, error) {
	ctx, reqID := common.EnsureRequestID(ctx)
	start := time.Now()

	body, err := json.Marshal(receipt)
	if err != nil {
		s.logger.Error("submit.http.encode_error", "req_id", reqID, "error", err)
		return nil, fmt.Errorf("%w: encode receipt: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		s.logger.Error("submit.http.build_request_error", "req_id", reqID, "error", err)
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	s.logger.Info("submit.http.request",
		"req_id", reqID,
		"endpoint", endpoint,
		"lines", len(receipt.Items),
		"content_length", len(body),
	)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("submit.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			s.logger.Warn("submit.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}

	s.logger.Info("submit.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		s.logger.Warn("submit.http.decode_error", "req_id", reqID, "status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}
	return &out, nil
}
