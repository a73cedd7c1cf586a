package http

import (
	"context"
	"encoding/json"
	"fmt"
	filmmodel "mfilmrate/film/pkg/model"
	"mfilmrate/internal/httputil"
	"mfilmrate/pkg/discovery"
	"mfilmrate/pkg/logging"
	"mfilmrate/recommend/internal/gateway"
	"net/http"
	"strconv"

	usermodel "mfilmrate/user/pkg/model"

	"go.uber.org/zap"
)

// Gateway defines a film service HTTP gateway serving the Like Index
// read path and film resolution.
type Gateway struct {
	registry discovery.Registry
	logger   *zap.Logger
}

// New creates a new HTTP gateway for the film service.
func New(registry discovery.Registry, logger *zap.Logger) *Gateway {
	logger = logger.With(
		zap.String(logging.FieldComponent, "film-gateway"),
		zap.String(logging.FieldType, "http"),
	)
	return &Gateway{registry: registry, logger: logger}
}

// LikedFilms returns the set of films the given user liked.
func (g *Gateway) LikedFilms(ctx context.Context, userId usermodel.UserId) ([]filmmodel.FilmId, error) {
	var res []filmmodel.FilmId
	if err := g.get(ctx, "/likes", map[string]string{"user_id": strconv.FormatInt(int64(userId), 10)}, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Likers returns the set of users who liked the given film.
func (g *Gateway) Likers(ctx context.Context, filmId filmmodel.FilmId) ([]usermodel.UserId, error) {
	var res []usermodel.UserId
	if err := g.get(ctx, "/likes", map[string]string{"film_id": strconv.FormatInt(int64(filmId), 10)}, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Film returns a film by id.
func (g *Gateway) Film(ctx context.Context, filmId filmmodel.FilmId) (*filmmodel.Film, error) {
	var res *filmmodel.Film
	if err := g.get(ctx, "/film", map[string]string{"id": strconv.FormatInt(int64(filmId), 10)}, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Gateway) get(ctx context.Context, path string, params map[string]string, out any) error {
	base, err := httputil.ServiceBaseURL(ctx, "film", g.registry)
	if err != nil {
		return err
	}
	url := base + path
	g.logger.Debug("Calling film service",
		zap.String("url", url),
		zap.String("method", "GET"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	values := req.URL.Query()
	for k, v := range params {
		values.Add(k, v)
	}
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
	return json.NewDecoder(resp.Body).Decode(out)
}
