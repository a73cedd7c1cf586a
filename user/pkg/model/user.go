package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// UserId defines a user id.
type UserId int64

var validate = validator.New(validator.WithRequiredStructEnabled())

// User defines a registered user of the service.
type User struct {
	Id       UserId    `json:"id"`
	Email    string    `json:"email" validate:"required,email"`
	Login    string    `json:"login" validate:"required,excludesall= "`
	Name     string    `json:"name"`
	Birthday time.Time `json:"birthday"`
}

func (u *User) String() string {
	return fmt.Sprintf("User{id=%d, email=%s, login=%s, name=%s}", u.Id, u.Email, u.Login, u.Name)
}

// Validate checks the user fields. A blank display name is not an
// error: it falls back to the login.
func (u *User) Validate() error {
	if err := validate.Struct(u); err != nil {
		return err
	}
	if u.Birthday.After(time.Now()) {
		return errors.New("birthday cannot be in the future")
	}
	return nil
}
