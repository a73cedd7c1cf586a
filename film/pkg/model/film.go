package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// FilmId defines a film id.
type FilmId int64

// EarliestReleaseDate is the first day cinema existed. Films cannot
// predate it.
var EarliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Film defines a film record.
type Film struct {
	Id          FilmId    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"max=200"`
	Duration    int       `json:"duration" validate:"gt=0"`
	ReleaseDate time.Time `json:"releaseDate"`
}

func (f *Film) String() string {
	return fmt.Sprintf("Film{id=%d, name=%s, duration=%d}", f.Id, f.Name, f.Duration)
}

// Validate checks the film fields, including the release date floor.
func (f *Film) Validate() error {
	if err := validate.Struct(f); err != nil {
		return err
	}
	if f.ReleaseDate.Before(EarliestReleaseDate) {
		return errors.New("release date cannot be before 1895-12-28")
	}
	return nil
}
