package http

import (
	"encoding/json"
	"errors"
	"mfilmrate/film/internal/controller/film"
	"mfilmrate/film/pkg/model"
	"mfilmrate/pkg/logging"
	"mfilmrate/pkg/metrics"
	"net/http"
	"strconv"
	"time"

	usermodel "mfilmrate/user/pkg/model"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
)

const defaultTopCount = 10

// Handler defines a film service HTTP handler.
type Handler struct {
	ctrl        *film.Controller
	logger      *zap.Logger
	filmMetrics *metrics.EndpointMetrics
	likeMetrics *metrics.EndpointMetrics
}

// New creates a new film service HTTP handler.
func New(ctrl *film.Controller, logger *zap.Logger, scope tally.Scope) *Handler {
	logger = logger.With(
		zap.String(logging.FieldComponent, "handler"),
		zap.String(logging.FieldType, "http"),
	)
	return &Handler{
		ctrl:        ctrl,
		logger:      logger,
		filmMetrics: metrics.NewEndpointMetrics(scope, "Film"),
		likeMetrics: metrics.NewEndpointMetrics(scope, "Like"),
	}
}

// Register attaches all film service routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/film", h.HandleFilm)
	mux.HandleFunc("/films", h.HandleFilms)
	mux.HandleFunc("/films/top", h.HandleTopFilms)
	mux.HandleFunc("/like", h.HandleLike)
	mux.HandleFunc("/likes", h.HandleLikes)
}

// HandleFilm handles GET, PUT and DELETE /film requests.
func (h *Handler) HandleFilm(w http.ResponseWriter, req *http.Request) {
	h.filmMetrics.Calls.Inc(1)
	id, err := strconv.ParseInt(req.FormValue("id"), 10, 64)
	if err != nil {
		h.filmMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	ctx := req.Context()
	switch req.Method {
	case http.MethodGet:
		f, err := h.ctrl.Get(ctx, model.FilmId(id))
		if err != nil {
			h.respondError(w, h.filmMetrics, err)
			return
		}
		h.encode(w, h.filmMetrics, f)
	case http.MethodPut:
		duration, err := strconv.Atoi(req.FormValue("duration"))
		if err != nil {
			h.filmMetrics.InvalidArgumentErrors.Inc(1)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		releaseDate, err := time.Parse("2006-01-02", req.FormValue("release_date"))
		if err != nil {
			h.filmMetrics.InvalidArgumentErrors.Inc(1)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f := &model.Film{
			Id:          model.FilmId(id),
			Name:        req.FormValue("name"),
			Description: req.FormValue("description"),
			Duration:    duration,
			ReleaseDate: releaseDate,
		}
		if err := h.ctrl.Put(ctx, f.Id, f); err != nil {
			h.filmMetrics.InvalidArgumentErrors.Inc(1)
			h.logger.Warn("Put film error", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.filmMetrics.Successes.Inc(1)
	case http.MethodDelete:
		if err := h.ctrl.Delete(ctx, model.FilmId(id)); err != nil {
			h.respondError(w, h.filmMetrics, err)
			return
		}
		h.filmMetrics.Successes.Inc(1)
	default:
		h.filmMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
	}
}

// HandleFilms handles GET /films requests.
func (h *Handler) HandleFilms(w http.ResponseWriter, req *http.Request) {
	h.filmMetrics.Calls.Inc(1)
	if req.Method != http.MethodGet {
		h.filmMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	films, err := h.ctrl.All(req.Context())
	if err != nil {
		h.respondError(w, h.filmMetrics, err)
		return
	}
	h.encode(w, h.filmMetrics, films)
}

// HandleTopFilms handles GET /films/top requests.
func (h *Handler) HandleTopFilms(w http.ResponseWriter, req *http.Request) {
	h.filmMetrics.Calls.Inc(1)
	if req.Method != http.MethodGet {
		h.filmMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	count := defaultTopCount
	if c := req.FormValue("count"); c != "" {
		parsed, err := strconv.Atoi(c)
		if err != nil || parsed <= 0 {
			h.filmMetrics.InvalidArgumentErrors.Inc(1)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		count = parsed
	}
	films, err := h.ctrl.TopFilms(req.Context(), count)
	if err != nil {
		h.respondError(w, h.filmMetrics, err)
		return
	}
	h.encode(w, h.filmMetrics, films)
}

// HandleLike handles PUT and DELETE /like requests.
func (h *Handler) HandleLike(w http.ResponseWriter, req *http.Request) {
	h.likeMetrics.Calls.Inc(1)
	filmId, err := strconv.ParseInt(req.FormValue("film_id"), 10, 64)
	if err != nil {
		h.likeMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	userId, err := strconv.ParseInt(req.FormValue("user_id"), 10, 64)
	if err != nil {
		h.likeMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	ctx := req.Context()
	switch req.Method {
	case http.MethodPut:
		err = h.ctrl.AddLike(ctx, model.FilmId(filmId), usermodel.UserId(userId))
	case http.MethodDelete:
		err = h.ctrl.RemoveLike(ctx, model.FilmId(filmId), usermodel.UserId(userId))
	default:
		h.likeMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		h.respondError(w, h.likeMetrics, err)
		return
	}
	h.likeMetrics.Successes.Inc(1)
}

// HandleLikes handles GET /likes requests: by user_id it returns the film
// ids the user liked, by film_id the user ids who liked the film.
func (h *Handler) HandleLikes(w http.ResponseWriter, req *http.Request) {
	h.likeMetrics.Calls.Inc(1)
	if req.Method != http.MethodGet {
		h.likeMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	ctx := req.Context()
	if v := req.FormValue("user_id"); v != "" {
		userId, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.likeMetrics.InvalidArgumentErrors.Inc(1)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filmIds, err := h.ctrl.LikedFilms(ctx, usermodel.UserId(userId))
		if err != nil {
			h.respondError(w, h.likeMetrics, err)
			return
		}
		h.encode(w, h.likeMetrics, filmIds)
		return
	}
	if v := req.FormValue("film_id"); v != "" {
		filmId, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.likeMetrics.InvalidArgumentErrors.Inc(1)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		userIds, err := h.ctrl.Likers(ctx, model.FilmId(filmId))
		if err != nil {
			h.respondError(w, h.likeMetrics, err)
			return
		}
		h.encode(w, h.likeMetrics, userIds)
		return
	}
	h.likeMetrics.InvalidArgumentErrors.Inc(1)
	w.WriteHeader(http.StatusBadRequest)
}

func (h *Handler) respondError(w http.ResponseWriter, m *metrics.EndpointMetrics, err error) {
	if errors.Is(err, film.ErrNotFound) {
		m.NotFoundErrors.Inc(1)
		w.WriteHeader(http.StatusNotFound)
		return
	}
	m.InternalErrors.Inc(1)
	h.logger.Warn("Controller error", zap.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
}

func (h *Handler) encode(w http.ResponseWriter, m *metrics.EndpointMetrics, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		m.InternalErrors.Inc(1)
		h.logger.Warn("Response encode error", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	m.Successes.Inc(1)
}
