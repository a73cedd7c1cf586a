package recommend

import (
	"context"
	"errors"
	filmmodel "mfilmrate/film/pkg/model"
	"mfilmrate/pkg/logging"
	"mfilmrate/recommend/internal/gateway"

	usermodel "mfilmrate/user/pkg/model"

	"go.uber.org/zap"
)

// ErrNotFound is returned when the target user does not exist or a
// candidate film vanishes while the result is being resolved.
var ErrNotFound = errors.New("not found")

type likeIndex interface {
	LikedFilms(ctx context.Context, userId usermodel.UserId) ([]filmmodel.FilmId, error)
	Likers(ctx context.Context, filmId filmmodel.FilmId) ([]usermodel.UserId, error)
	Film(ctx context.Context, filmId filmmodel.FilmId) (*filmmodel.Film, error)
}

type userGateway interface {
	CheckUser(ctx context.Context, id usermodel.UserId) error
}

// Controller defines a recommendation service controller. It finds the
// peers whose liked-film sets overlap the target's the most and
// recommends the films those peers liked that the target has not.
type Controller struct {
	likes  likeIndex
	users  userGateway
	logger *zap.Logger
}

// New creates a recommendation service controller.
func New(likes likeIndex, users userGateway, logger *zap.Logger) *Controller {
	logger = logger.With(zap.String(logging.FieldComponent, "controller"))
	return &Controller{likes: likes, users: users, logger: logger}
}

// GetRecommendations returns films recommended for the given user. The
// result is a set with no ordering contract. It never contains a film
// the user already liked, and it is empty whenever the user liked
// nothing or shares no liked film with anybody. Empty results are
// normal outcomes, not errors.
func (c *Controller) GetRecommendations(ctx context.Context, userId usermodel.UserId) ([]filmmodel.Film, error) {
	if err := c.users.CheckUser(ctx, userId); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	liked, err := c.likes.LikedFilms(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(liked) == 0 {
		return []filmmodel.Film{}, nil
	}
	target := make(map[filmmodel.FilmId]struct{}, len(liked))
	for _, filmId := range liked {
		target[filmId] = struct{}{}
	}

	peerLikes, err := c.maxOverlapPeers(ctx, userId, target)
	if err != nil {
		return nil, err
	}
	return c.assemble(ctx, target, peerLikes)
}

// maxOverlapPeers scores every user sharing at least one liked film with
// the target and keeps all peers tied at the maximum overlap count,
// along with their liked-film sets. Only users who liked one of the
// target's films can have a positive overlap, so candidates are drawn
// from the likers of those films.
func (c *Controller) maxOverlapPeers(ctx context.Context, userId usermodel.UserId, target map[filmmodel.FilmId]struct{}) (map[usermodel.UserId][]filmmodel.FilmId, error) {
	candidates := map[usermodel.UserId]struct{}{}
	for filmId := range target {
		likers, err := c.likes.Likers(ctx, filmId)
		if err != nil {
			return nil, err
		}
		for _, liker := range likers {
			if liker != userId {
				candidates[liker] = struct{}{}
			}
		}
	}

	peerLikes := map[usermodel.UserId][]filmmodel.FilmId{}
	maxOverlap := 0
	for peer := range candidates {
		liked, err := c.likes.LikedFilms(ctx, peer)
		if err != nil {
			return nil, err
		}
		overlap := 0
		for _, filmId := range liked {
			if _, ok := target[filmId]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		if overlap > maxOverlap {
			maxOverlap = overlap
			peerLikes = map[usermodel.UserId][]filmmodel.FilmId{}
		}
		if overlap == maxOverlap {
			peerLikes[peer] = liked
		}
	}
	return peerLikes, nil
}

// assemble unions the peers' liked films, subtracts the target's own
// likes and resolves the remaining ids to film records. A candidate id
// that resolves to nothing is surfaced, not skipped.
func (c *Controller) assemble(ctx context.Context, target map[filmmodel.FilmId]struct{}, peerLikes map[usermodel.UserId][]filmmodel.FilmId) ([]filmmodel.Film, error) {
	candidates := map[filmmodel.FilmId]struct{}{}
	for _, liked := range peerLikes {
		for _, filmId := range liked {
			if _, ok := target[filmId]; !ok {
				candidates[filmId] = struct{}{}
			}
		}
	}

	res := make([]filmmodel.Film, 0, len(candidates))
	for filmId := range candidates {
		f, err := c.likes.Film(ctx, filmId)
		if err != nil {
			if errors.Is(err, gateway.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		res = append(res, *f)
	}
	return res, nil
}
