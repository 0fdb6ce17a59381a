package service

import (
	"errors"
	"fmt"

	"cinehub/internal/apperrors"

	"gorm.io/gorm"
)

// Actor is the authenticated caller as seen by the services. A zero Actor is anonymous.
type Actor struct {
	UserID  string
	IsStaff bool
}

func (a Actor) Anonymous() bool {
	return a.UserID == ""
}

// notFoundOr maps gorm.ErrRecordNotFound to a typed NotFound and wraps anything else.
func notFoundOr(err error, resource string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(resource, id)
	}
	return apperrors.Internal(fmt.Errorf("load %s %v: %w", resource, id, err))
}
