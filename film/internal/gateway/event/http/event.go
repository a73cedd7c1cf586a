package http

import (
	"context"
	"fmt"
	"mfilmrate/internal/httputil"
	"mfilmrate/pkg/discovery"
	"mfilmrate/pkg/logging"
	"net/http"
	"strconv"

	usermodel "mfilmrate/user/pkg/model"

	"go.uber.org/zap"
)

// Gateway defines an activity feed event HTTP gateway backed by the user service.
type Gateway struct {
	registry discovery.Registry
	logger   *zap.Logger
}

// New creates a new HTTP gateway for recording activity feed events.
func New(registry discovery.Registry, logger *zap.Logger) *Gateway {
	logger = logger.With(
		zap.String(logging.FieldComponent, "event-gateway"),
		zap.String(logging.FieldType, "http"),
	)
	return &Gateway{registry: registry, logger: logger}
}

// RecordEvent appends an event to the actor's activity feed.
func (g *Gateway) RecordEvent(ctx context.Context, userId usermodel.UserId, eventType usermodel.EventType, operation usermodel.Operation, entityId int64) error {
	base, err := httputil.ServiceBaseURL(ctx, "user", g.registry)
	if err != nil {
		return err
	}
	url := base + "/event"
	g.logger.Debug("Calling user service",
		zap.String("url", url),
		zap.String("method", "POST"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	values := req.URL.Query()
	values.Add("user_id", strconv.FormatInt(int64(userId), 10))
	values.Add("event_type", string(eventType))
	values.Add("operation", string(operation))
	values.Add("entity_id", strconv.FormatInt(entityId, 10))
	req.URL.RawQuery = values.Encode()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("non-2xx status code: %v", resp)
	}
	return nil
}
