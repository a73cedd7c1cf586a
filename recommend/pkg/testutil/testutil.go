package testutil

import (
	"mfilmrate/pkg/discovery"
	"mfilmrate/pkg/logging"
	"mfilmrate/recommend/internal/controller/recommend"
	filmgateway "mfilmrate/recommend/internal/gateway/film/http"
	usergateway "mfilmrate/recommend/internal/gateway/user/http"
	httphandler "mfilmrate/recommend/internal/handler/http"
	"net/http"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
)

// NewTestRecommendHTTPHandler wires a recommendation service handler
// whose gateways resolve through the given registry.
func NewTestRecommendHTTPHandler(registry discovery.Registry, logger *zap.Logger) http.Handler {
	logger = logger.With(
		zap.String(logging.FieldService, "recommend"),
	)
	likes := filmgateway.New(registry, logger)
	users := usergateway.New(registry, logger)
	ctrl := recommend.New(likes, users, logger)
	h := httphandler.New(ctrl, logger, tally.NoopScope)
	mux := http.NewServeMux()
	h.Register(mux)
	return mux
}
