// Package actors resolves who is acting on an order for commands and queries.
package actors

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// Load resolves the acting user. An unknown actor is unauthorized, not missing.
func Load(ctx context.Context, users ports.UserRepository, id kernel.UUID) (user.User, error) {
	u, err := users.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return user.User{}, errs.NewUnauthorizedError(id.String())
	}
	return u, err
}

// ShopOwner returns the owner of shopID, or a zero UUID when the shop no
// longer exists. A zero UUID matches no actor.
func ShopOwner(ctx context.Context, shops ports.ShopRepository, shopID kernel.UUID) (kernel.UUID, error) {
	s, err := shops.Get(ctx, shopID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, nil
	}
	if err != nil {
		return kernel.UUID{}, err
	}
	return s.OwnerID(), nil
}
