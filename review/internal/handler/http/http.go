package http

import (
	"encoding/json"
	"errors"
	filmmodel "mfilmrate/film/pkg/model"
	"mfilmrate/pkg/logging"
	"mfilmrate/pkg/metrics"
	"mfilmrate/review/internal/controller/review"
	"mfilmrate/review/pkg/model"
	"net/http"
	"strconv"

	usermodel "mfilmrate/user/pkg/model"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
)

const defaultReviewCount = 10

// Handler defines a review service HTTP handler.
type Handler struct {
	ctrl          *review.Controller
	logger        *zap.Logger
	reviewMetrics *metrics.EndpointMetrics
}

// New creates a new review service HTTP handler.
func New(ctrl *review.Controller, logger *zap.Logger, scope tally.Scope) *Handler {
	logger = logger.With(
		zap.String(logging.FieldComponent, "handler"),
		zap.String(logging.FieldType, "http"),
	)
	return &Handler{
		ctrl:          ctrl,
		logger:        logger,
		reviewMetrics: metrics.NewEndpointMetrics(scope, "Review"),
	}
}

// Register attaches all review service routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/review", h.HandleReview)
	mux.HandleFunc("/reviews", h.HandleReviews)
}

// HandleReview handles GET, POST, PUT and DELETE /review requests.
func (h *Handler) HandleReview(w http.ResponseWriter, req *http.Request) {
	h.reviewMetrics.Calls.Inc(1)
	ctx := req.Context()
	switch req.Method {
	case http.MethodGet:
		id, err := strconv.ParseInt(req.FormValue("id"), 10, 64)
		if err != nil {
			h.badRequest(w)
			return
		}
		r, err := h.ctrl.Get(ctx, model.ReviewId(id))
		if err != nil {
			h.respondError(w, err)
			return
		}
		h.encode(w, r)
	case http.MethodPost:
		r, ok := h.parseReview(w, req, 0)
		if !ok {
			return
		}
		created, err := h.ctrl.Create(ctx, r)
		if err != nil {
			h.respondError(w, err)
			return
		}
		h.encode(w, created)
	case http.MethodPut:
		id, err := strconv.ParseInt(req.FormValue("id"), 10, 64)
		if err != nil {
			h.badRequest(w)
			return
		}
		r, ok := h.parseReview(w, req, model.ReviewId(id))
		if !ok {
			return
		}
		if err := h.ctrl.Update(ctx, r); err != nil {
			h.respondError(w, err)
			return
		}
		h.reviewMetrics.Successes.Inc(1)
	case http.MethodDelete:
		id, err := strconv.ParseInt(req.FormValue("id"), 10, 64)
		if err != nil {
			h.badRequest(w)
			return
		}
		if err := h.ctrl.Delete(ctx, model.ReviewId(id)); err != nil {
			h.respondError(w, err)
			return
		}
		h.reviewMetrics.Successes.Inc(1)
	default:
		h.badRequest(w)
	}
}

// HandleReviews handles GET /reviews requests.
func (h *Handler) HandleReviews(w http.ResponseWriter, req *http.Request) {
	h.reviewMetrics.Calls.Inc(1)
	if req.Method != http.MethodGet {
		h.badRequest(w)
		return
	}
	var filmId int64
	if v := req.FormValue("film_id"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.badRequest(w)
			return
		}
		filmId = parsed
	}
	count := defaultReviewCount
	if v := req.FormValue("count"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			h.badRequest(w)
			return
		}
		count = parsed
	}
	reviews, err := h.ctrl.ByFilm(req.Context(), filmId, count)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.encode(w, reviews)
}

func (h *Handler) parseReview(w http.ResponseWriter, req *http.Request, id model.ReviewId) (*model.Review, bool) {
	userId, err := strconv.ParseInt(req.FormValue("user_id"), 10, 64)
	if err != nil {
		h.badRequest(w)
		return nil, false
	}
	filmId, err := strconv.ParseInt(req.FormValue("film_id"), 10, 64)
	if err != nil {
		h.badRequest(w)
		return nil, false
	}
	isPositive, err := strconv.ParseBool(req.FormValue("is_positive"))
	if err != nil {
		h.badRequest(w)
		return nil, false
	}
	return &model.Review{
		ReviewId:   id,
		Content:    req.FormValue("content"),
		IsPositive: &isPositive,
		UserId:     usermodel.UserId(userId),
		FilmId:     filmmodel.FilmId(filmId),
	}, true
}

func (h *Handler) badRequest(w http.ResponseWriter) {
	h.reviewMetrics.InvalidArgumentErrors.Inc(1)
	w.WriteHeader(http.StatusBadRequest)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, review.ErrNotFound) {
		h.reviewMetrics.NotFoundErrors.Inc(1)
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h.reviewMetrics.InternalErrors.Inc(1)
	h.logger.Warn("Controller error", zap.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
}

func (h *Handler) encode(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.reviewMetrics.InternalErrors.Inc(1)
		h.logger.Warn("Response encode error", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.reviewMetrics.Successes.Inc(1)
}
