package model

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ISOLayout is how CreatedAt is written out: UTC, millisecond precision.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// Item is a single user-created record.
// ID and CreatedAt are assigned once by the store and never change.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreatedISO returns CreatedAt in ISO-8601 form.
func (it Item) CreatedISO() string {
	return it.CreatedAt.UTC().Format(ISOLayout)
}

// Draft is what a form or a script hands over before it reaches the store.
type Draft struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// FieldError reports a required field that was left empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return e.Field + " is required" }

var validate = validator.New()

// Normalize trims surrounding whitespace from both fields.
func (d Draft) Normalize() Draft {
	return Draft{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
	}
}

// Validate checks required-field presence only. The first missing field wins.
func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{Field: strings.ToLower(verrs[0].Field())}
	}
	return err
}
