package http

import (
	"encoding/json"
	"errors"
	"mfilmrate/pkg/logging"
	"mfilmrate/pkg/metrics"
	"mfilmrate/recommend/internal/controller/recommend"
	"net/http"
	"strconv"

	usermodel "mfilmrate/user/pkg/model"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
)

// Handler defines a recommendation service HTTP handler.
type Handler struct {
	ctrl                  *recommend.Controller
	logger                *zap.Logger
	recommendationMetrics *metrics.EndpointMetrics
}

// New creates a new recommendation service HTTP handler.
func New(ctrl *recommend.Controller, logger *zap.Logger, scope tally.Scope) *Handler {
	logger = logger.With(
		zap.String(logging.FieldComponent, "handler"),
		zap.String(logging.FieldType, "http"),
	)
	return &Handler{
		ctrl:                  ctrl,
		logger:                logger,
		recommendationMetrics: metrics.NewEndpointMetrics(scope, "GetRecommendations"),
	}
}

// Register attaches all recommendation service routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/recommendations", h.HandleRecommendations)
}

// HandleRecommendations handles GET /recommendations requests.
func (h *Handler) HandleRecommendations(w http.ResponseWriter, req *http.Request) {
	h.recommendationMetrics.Calls.Inc(1)
	userId, err := strconv.ParseInt(req.FormValue("user_id"), 10, 64)
	if err != nil || req.Method != http.MethodGet {
		h.recommendationMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	films, err := h.ctrl.GetRecommendations(req.Context(), usermodel.UserId(userId))
	if err != nil && errors.Is(err, recommend.ErrNotFound) {
		h.recommendationMetrics.NotFoundErrors.Inc(1)
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		h.recommendationMetrics.InternalErrors.Inc(1)
		h.logger.Warn("Controller error", zap.Int64("userId", userId), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(films); err != nil {
		h.recommendationMetrics.InternalErrors.Inc(1)
		h.logger.Warn("Response encode error", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.recommendationMetrics.Successes.Inc(1)
}
