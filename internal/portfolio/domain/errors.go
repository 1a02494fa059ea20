package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	ErrRemarkNotFound  = fmt.Errorf("remark %w", ErrNotFound)
	ErrContactNotFound = fmt.Errorf("message %w", ErrNotFound)

	ErrProjectTitleTaken = errors.New("project exists with given title")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidRating     = errors.New("rating must be an integer between 1 and 5")
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when an input fails validation.
// errors.Is matches ErrValidation, and ErrInvalidRating when the rating is at fault.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	msg := e.Fields[0].Message
	for _, f := range e.Fields[1:] {
		msg += "; " + f.Message
	}
	return msg
}

func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return true
	case ErrInvalidRating:
		return e.HasField("rating")
	}
	return false
}

func (e *ValidationError) HasField(name string) bool {
	for _, f := range e.Fields {
		if f.Field == name {
			return true
		}
	}
	return false
}
