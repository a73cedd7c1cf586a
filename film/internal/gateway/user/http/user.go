package http

import (
	"context"
	"fmt"
	"mfilmrate/film/internal/gateway"
	"mfilmrate/internal/httputil"
	"mfilmrate/pkg/discovery"
	"mfilmrate/pkg/logging"
	"net/http"
	"strconv"

	usermodel "mfilmrate/user/pkg/model"

	"go.uber.org/zap"
)

// Gateway defines a user service HTTP gateway.
type Gateway struct {
	registry discovery.Registry
	logger   *zap.Logger
}

// New creates a new HTTP gateway for the user service.
func New(registry discovery.Registry, logger *zap.Logger) *Gateway {
	logger = logger.With(
		zap.String(logging.FieldComponent, "user-gateway"),
		zap.String(logging.FieldType, "http"),
	)
	return &Gateway{registry: registry, logger: logger}
}

// CheckUser verifies a user exists, returning gateway.ErrNotFound when it does not.
func (g *Gateway) CheckUser(ctx context.Context, id usermodel.UserId) error {
	base, err := httputil.ServiceBaseURL(ctx, "user", g.registry)
	if err != nil {
		return err
	}
	url := base + "/user"
	g.logger.Debug("Calling user service",
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
