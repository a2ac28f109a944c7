package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"
)

// The repositories below read records owned by other services. Only the cart
// is written to, and only to consume it at checkout.

type UserRepository interface {
	// Get returns errs.ObjectNotFoundError for unknown users.
	Get(ctx context.Context, id kernel.UUID) (user.User, error)
}

type ShopRepository interface {
	// Get returns errs.ObjectNotFoundError for unknown shops.
	Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error)
}

type CartRepository interface {
	// GetByShop returns the customer's cart lines whose item belongs to shopID
	// and locks them for the rest of the transaction.
	GetByShop(ctx context.Context, customerID, shopID kernel.UUID) ([]cart.Line, error)

	// DeleteLines removes the customer's cart lines with the given ids only.
	// It returns errs.ConflictError if any of them no longer exists.
	DeleteLines(ctx context.Context, customerID kernel.UUID, lineIDs []kernel.UUID) error
}

type AddressRepository interface {
	// GetOwned returns the address only if it belongs to ownerID, and
	// errs.ObjectNotFoundError otherwise.
	GetOwned(ctx context.Context, id, ownerID kernel.UUID) (kernel.Address, error)
}
