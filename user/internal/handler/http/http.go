package http

import (
	"encoding/json"
	"errors"
	"mfilmrate/pkg/logging"
	"mfilmrate/pkg/metrics"
	"mfilmrate/user/internal/controller/user"
	"mfilmrate/user/pkg/model"
	"net/http"
	"strconv"
	"time"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
)

// Handler defines a user service HTTP handler.
type Handler struct {
	ctrl          *user.Controller
	logger        *zap.Logger
	userMetrics   *metrics.EndpointMetrics
	friendMetrics *metrics.EndpointMetrics
	feedMetrics   *metrics.EndpointMetrics
	eventMetrics  *metrics.EndpointMetrics
}

// New creates a new user service HTTP handler.
func New(ctrl *user.Controller, logger *zap.Logger, scope tally.Scope) *Handler {
	logger = logger.With(
		zap.String(logging.FieldComponent, "handler"),
		zap.String(logging.FieldType, "http"),
	)
	return &Handler{
		ctrl:          ctrl,
		logger:        logger,
		userMetrics:   metrics.NewEndpointMetrics(scope, "User"),
		friendMetrics: metrics.NewEndpointMetrics(scope, "Friend"),
		feedMetrics:   metrics.NewEndpointMetrics(scope, "Feed"),
		eventMetrics:  metrics.NewEndpointMetrics(scope, "Event"),
	}
}

// Register attaches all user service routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/user", h.HandleUser)
	mux.HandleFunc("/users", h.HandleUsers)
	mux.HandleFunc("/friend", h.HandleFriend)
	mux.HandleFunc("/friends", h.HandleFriends)
	mux.HandleFunc("/friends/common", h.HandleCommonFriends)
	mux.HandleFunc("/feed", h.HandleFeed)
	mux.HandleFunc("/event", h.HandleEvent)
}

// HandleUser handles GET, PUT and DELETE /user requests.
func (h *Handler) HandleUser(w http.ResponseWriter, req *http.Request) {
	h.userMetrics.Calls.Inc(1)
	id, err := parseId(req.FormValue("id"))
	if err != nil {
		h.userMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	ctx := req.Context()
	switch req.Method {
	case http.MethodGet:
		u, err := h.ctrl.Get(ctx, model.UserId(id))
		if err != nil {
			h.respondError(w, h.userMetrics, err)
			return
		}
		h.encode(w, h.userMetrics, u)
	case http.MethodPut:
		birthday, err := time.Parse("2006-01-02", req.FormValue("birthday"))
		if err != nil {
			h.userMetrics.InvalidArgumentErrors.Inc(1)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		u := &model.User{
			Id:       model.UserId(id),
			Email:    req.FormValue("email"),
			Login:    req.FormValue("login"),
			Name:     req.FormValue("name"),
			Birthday: birthday,
		}
		if err := h.ctrl.Put(ctx, u.Id, u); err != nil {
			h.userMetrics.InvalidArgumentErrors.Inc(1)
			h.logger.Warn("Put user error", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.userMetrics.Successes.Inc(1)
	case http.MethodDelete:
		if err := h.ctrl.Delete(ctx, model.UserId(id)); err != nil {
			h.respondError(w, h.userMetrics, err)
			return
		}
		h.userMetrics.Successes.Inc(1)
	default:
		h.userMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
	}
}

// HandleUsers handles GET /users requests.
func (h *Handler) HandleUsers(w http.ResponseWriter, req *http.Request) {
	h.userMetrics.Calls.Inc(1)
	if req.Method != http.MethodGet {
		h.userMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	users, err := h.ctrl.All(req.Context())
	if err != nil {
		h.respondError(w, h.userMetrics, err)
		return
	}
	h.encode(w, h.userMetrics, users)
}

// HandleFriend handles PUT and DELETE /friend requests.
func (h *Handler) HandleFriend(w http.ResponseWriter, req *http.Request) {
	h.friendMetrics.Calls.Inc(1)
	userId, err := parseId(req.FormValue("user_id"))
	if err != nil {
		h.friendMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	friendId, err := parseId(req.FormValue("friend_id"))
	if err != nil {
		h.friendMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	ctx := req.Context()
	switch req.Method {
	case http.MethodPut:
		err = h.ctrl.AddFriend(ctx, model.UserId(userId), model.UserId(friendId))
	case http.MethodDelete:
		err = h.ctrl.RemoveFriend(ctx, model.UserId(userId), model.UserId(friendId))
	default:
		h.friendMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		h.respondError(w, h.friendMetrics, err)
		return
	}
	h.friendMetrics.Successes.Inc(1)
}

// HandleFriends handles GET /friends requests.
func (h *Handler) HandleFriends(w http.ResponseWriter, req *http.Request) {
	h.friendMetrics.Calls.Inc(1)
	userId, err := parseId(req.FormValue("user_id"))
	if err != nil || req.Method != http.MethodGet {
		h.friendMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	friends, err := h.ctrl.Friends(req.Context(), model.UserId(userId))
	if err != nil {
		h.respondError(w, h.friendMetrics, err)
		return
	}
	h.encode(w, h.friendMetrics, friends)
}

// HandleCommonFriends handles GET /friends/common requests.
func (h *Handler) HandleCommonFriends(w http.ResponseWriter, req *http.Request) {
	h.friendMetrics.Calls.Inc(1)
	userId, err := parseId(req.FormValue("user_id"))
	if err != nil || req.Method != http.MethodGet {
		h.friendMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	otherId, err := parseId(req.FormValue("other_id"))
	if err != nil {
		h.friendMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	friends, err := h.ctrl.CommonFriends(req.Context(), model.UserId(userId), model.UserId(otherId))
	if err != nil {
		h.respondError(w, h.friendMetrics, err)
		return
	}
	h.encode(w, h.friendMetrics, friends)
}

// HandleFeed handles GET /feed requests.
func (h *Handler) HandleFeed(w http.ResponseWriter, req *http.Request) {
	h.feedMetrics.Calls.Inc(1)
	userId, err := parseId(req.FormValue("user_id"))
	if err != nil || req.Method != http.MethodGet {
		h.feedMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	feed, err := h.ctrl.Feed(req.Context(), model.UserId(userId))
	if err != nil {
		h.respondError(w, h.feedMetrics, err)
		return
	}
	h.encode(w, h.feedMetrics, feed)
}

// HandleEvent handles POST /event requests from the film and review services.
func (h *Handler) HandleEvent(w http.ResponseWriter, req *http.Request) {
	h.eventMetrics.Calls.Inc(1)
	if req.Method != http.MethodPost {
		h.eventMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	userId, err := parseId(req.FormValue("user_id"))
	if err != nil {
		h.eventMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	entityId, err := parseId(req.FormValue("entity_id"))
	if err != nil {
		h.eventMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	eventType := model.EventType(req.FormValue("event_type"))
	operation := model.Operation(req.FormValue("operation"))
	if eventType == "" || operation == "" {
		h.eventMetrics.InvalidArgumentErrors.Inc(1)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := h.ctrl.RecordEvent(req.Context(), model.UserId(userId), eventType, operation, entityId); err != nil {
		h.respondError(w, h.eventMetrics, err)
		return
	}
	h.eventMetrics.Successes.Inc(1)
}

func (h *Handler) respondError(w http.ResponseWriter, m *metrics.EndpointMetrics, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		m.NotFoundErrors.Inc(1)
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, user.ErrAlreadyExists):
		m.ConflictErrors.Inc(1)
		w.WriteHeader(http.StatusConflict)
	default:
		m.InternalErrors.Inc(1)
		h.logger.Warn("Controller error", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
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

func parseId(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
