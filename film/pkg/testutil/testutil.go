package testutil

import (
	"context"
	"mfilmrate/film/internal/controller/film"
	eventgateway "mfilmrate/film/internal/gateway/event/http"
	usergateway "mfilmrate/film/internal/gateway/user/http"
	httphandler "mfilmrate/film/internal/handler/http"
	"mfilmrate/film/internal/repository/memory"
	"mfilmrate/film/pkg/model"
	"mfilmrate/pkg/discovery"
	"mfilmrate/pkg/logging"
	"net/http"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
)

// NewTestFilmHTTPHandler wires a film service handler backed by the
// in-memory repository and a stub ingester. User and event gateways
// resolve through the given registry.
func NewTestFilmHTTPHandler(registry discovery.Registry, logger *zap.Logger) http.Handler {
	logger = logger.With(
		zap.String(logging.FieldService, "film"),
	)
	r := memory.New(logger)
	users := usergateway.New(registry, logger)
	events := eventgateway.New(registry, logger)
	ctrl := film.New(r, stubIngester{}, users, events, logger)
	h := httphandler.New(ctrl, logger, tally.NoopScope)
	mux := http.NewServeMux()
	h.Register(mux)
	return mux
}

// stubIngester yields no events; it stands in for Kafka in tests.
type stubIngester struct{}

func (stubIngester) Ingest(_ context.Context) (chan model.LikeEvent, error) {
	ch := make(chan model.LikeEvent)
	close(ch)
	return ch, nil
}
