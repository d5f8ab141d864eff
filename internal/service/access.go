package service

import (
	"fmt"

	"adboard/internal/models"
)

// CanMutate reports whether principal may change a resource owned by ownerID.
func CanMutate(principal *models.Principal, ownerID int64) bool {
	if principal == nil {
		return false
	}
	return principal.IsAdmin() || principal.ID == ownerID
}

func authorize(principal *models.Principal, ownerID int64) error {
	if principal == nil {
		return models.ErrUnauthenticated
	}
	if !CanMutate(principal, ownerID) {
		return fmt.Errorf("%w: user %d does not own the resource", models.ErrForbidden, principal.ID)
	}
	return nil
}

func requirePrincipal(principal *models.Principal) error {
	if principal == nil {
		return models.ErrUnauthenticated
	}
	return nil
}
