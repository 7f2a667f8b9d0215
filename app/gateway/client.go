// Package gateway is the only place that talks to the sanctions
// backend. Wire naming (uid/descripcion, the mixed ID_x fields) stays
// inside this package; everything else works with the canonical models.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Karlos-Daniel/Sanciones-ENAP-Front/app/metrics"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func New(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

// StatusError is a non-2xx backend reply. Failed calls are never
// retried here; the handler that asked decides what the user sees.
type StatusError struct {
	Operacion string
	Status    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: el backend respondió %d", e.Operacion, e.Status)
}

func (c *Client) get(ctx context.Context, operacion, path string, out any) error {
	return c.do(ctx, operacion, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, operacion, method, path string, body, out any) error {
	metrics.GatewayRequests.WithLabelValues(operacion).Inc()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: codificar cuerpo: %w", operacion, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", operacion, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	inicio := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.GatewayErrors.WithLabelValues(operacion).Inc()
		return fmt.Errorf("%s: %w", operacion, err)
	}
	defer resp.Body.Close()
	metrics.ObserveGateway(operacion, time.Since(inicio))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.GatewayErrors.WithLabelValues(operacion).Inc()
		c.log.Warn("respuesta no exitosa del backend",
			zap.String("operacion", operacion),
			zap.Int("status", resp.StatusCode))
		return &StatusError{Operacion: operacion, Status: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decodificar respuesta: %w", operacion, err)
	}
	return nil
}
