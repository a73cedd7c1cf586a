package testutil

import (
	"mfilmrate/pkg/discovery"
	"mfilmrate/pkg/logging"
	"mfilmrate/review/internal/controller/review"
	eventgateway "mfilmrate/review/internal/gateway/event/http"
	filmgateway "mfilmrate/review/internal/gateway/film/http"
	usergateway "mfilmrate/review/internal/gateway/user/http"
	httphandler "mfilmrate/review/internal/handler/http"
	"mfilmrate/review/internal/repository/memory"
	"net/http"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
)

// NewTestReviewHTTPHandler wires a review service handler backed by the
// in-memory repository. User, film and event gateways resolve through
// the given registry.
func NewTestReviewHTTPHandler(registry discovery.Registry, logger *zap.Logger) http.Handler {
	logger = logger.With(
		zap.String(logging.FieldService, "review"),
	)
	r := memory.New(logger)
	users := usergateway.New(registry, logger)
	films := filmgateway.New(registry, logger)
	events := eventgateway.New(registry, logger)
	ctrl := review.New(r, users, films, events, logger)
	h := httphandler.New(ctrl, logger, tally.NoopScope)
	mux := http.NewServeMux()
	h.Register(mux)
	return mux
}
