package model

import (
	"fmt"
	filmmodel "mfilmrate/film/pkg/model"

	usermodel "mfilmrate/user/pkg/model"

	"github.com/go-playground/validator/v10"
)

// ReviewId defines a review id.
type ReviewId int64

var validate = validator.New(validator.WithRequiredStructEnabled())

// Review defines a user's review of a film. IsPositive is a pointer so
// a missing value can be told apart from an explicit negative review.
// Useful is the like/dislike balance of the review itself, maintained
// by the repository.
type Review struct {
	ReviewId   ReviewId         `json:"reviewId"`
	Content    string           `json:"content" validate:"required"`
	IsPositive *bool            `json:"isPositive" validate:"required"`
	UserId     usermodel.UserId `json:"userId"`
	FilmId     filmmodel.FilmId `json:"filmId"`
	Useful     int              `json:"useful"`
}

func (r *Review) String() string {
	return fmt.Sprintf("Review{id=%d, userId=%d, filmId=%d, useful=%d}", r.ReviewId, r.UserId, r.FilmId, r.Useful)
}

// Validate checks the review fields.
func (r *Review) Validate() error {
	return validate.Struct(r)
}
