package testutil

import (
	"mfilmrate/pkg/logging"
	"mfilmrate/user/internal/controller/user"
	httphandler "mfilmrate/user/internal/handler/http"
	"mfilmrate/user/internal/repository/memory"
	"net/http"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
)

// NewTestUserHTTPHandler wires a user service handler backed by the
// in-memory repository.
func NewTestUserHTTPHandler(logger *zap.Logger) http.Handler {
	logger = logger.With(
		zap.String(logging.FieldService, "user"),
	)
	r := memory.New(logger)
	ctrl := user.New(r, logger)
	h := httphandler.New(ctrl, logger, tally.NoopScope)
	mux := http.NewServeMux()
	h.Register(mux)
	return mux
}
