package http

import (
	"context"
	"fmt"
	filmmodel "mfilmrate/film/pkg/model"
	"mfilmrate/internal/httputil"
	"mfilmrate/pkg/discovery"
	"mfilmrate/pkg/logging"
	"mfilmrate/review/internal/gateway"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// Gateway defines a film service HTTP gateway.
type Gateway struct {
	registry discovery.Registry
	logger   *zap.Logger
}

// New creates a new HTTP gateway for the film service.
func New(registry discovery.Registry, logger *zap.Logger) *Gateway {
	logger = logger.With(
		zap.String(logging.FieldComponent, "film-gateway"),
		zap.String(logging.FieldType, "http"),
	)
	return &Gateway{registry: registry, logger: logger}
}

// CheckFilm verifies a film exists, returning gateway.ErrNotFound when it does not.
func (g *Gateway) CheckFilm(ctx context.Context, id filmmodel.FilmId) error {
	base, err := httputil.ServiceBaseURL(ctx, "film", g.registry)
	if err != nil {
		return err
	}
	url := base + "/film"
	g.logger.Debug("Calling film service",
		zap.String("url", url),
		zap.String("method", "GET"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	values := req.URL.Query()
	values.Add("id", strconv.FormatInt(int64(id), 10))
	req.URL.RawQuery = values.Encode()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return gateway.ErrNotFound
	} else if resp.StatusCode/100 != 2 {
		return fmt.Errorf("non-2xx status code: %v", resp)
	}
	return nil
}
