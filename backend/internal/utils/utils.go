package utils

import (
	"fmt"
	"unicode/utf8"

	"github.com/teamboard/teamboard/shared/errors"
)

const (
	MaxNameLen               = 64
	MaxDescriptionLen        = 128
	MaxDisplayNameLen        = 64
	MaxUpdatedDisplayNameLen = 128
	MaxUsersPerBatch         = 50
)

func required(field, value string, limit int) error {
	if value == "" {
		return &errors.ValidationError{Message: fmt.Sprintf("%s is required", field)}
	}
	return maxLen(field, value, limit)
}

func maxLen(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return &errors.ValidationError{Message: fmt.Sprintf("%s must be at most %d characters", field, limit)}
	}
	return nil
}

type UserValidator struct{}

func (v *UserValidator) Name(name string) error {
	return required("User name", name, MaxNameLen)
}

func (v *UserValidator) DisplayName(name string) error {
	return maxLen("Display name", name, MaxDisplayNameLen)
}

// UpdatedDisplayName allows a longer value than creation does.
func (v *UserValidator) UpdatedDisplayName(name string) error {
	return maxLen("Display name", name, MaxUpdatedDisplayNameLen)
}

type TeamValidator struct{}

func (v *TeamValidator) Name(name string) error {
	return required("Team name", name, MaxNameLen)
}

func (v *TeamValidator) Description(description string) error {
	return maxLen("Description", description, MaxDescriptionLen)
}

func (v *TeamValidator) UsersBatch(n int) error {
	if n > MaxUsersPerBatch {
		return &errors.ValidationError{Message: fmt.Sprintf("Cannot change more than %d users at once", MaxUsersPerBatch)}
	}
	return nil
}

type BoardValidator struct{}

func (v *BoardValidator) Name(name string) error {
	return required("Board name", name, MaxNameLen)
}

func (v *BoardValidator) Description(description string) error {
	return maxLen("Description", description, MaxDescriptionLen)
}

type TaskValidator struct{}

func (v *TaskValidator) Title(title string) error {
	return required("Task title", title, MaxNameLen)
}

func (v *TaskValidator) Description(description string) error {
	return maxLen("Description", description, MaxDescriptionLen)
}
