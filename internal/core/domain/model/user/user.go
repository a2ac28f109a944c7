// Package user models the authenticated actor performing an order operation.
// Riders are not a role: any user may claim a prepared order.
package user

import (
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Role is the platform role of a user.
type Role int

const (
	RoleUnknown Role = iota
	RoleUser
	RoleAdmin
)

var roleLabels = map[Role]string{
	RoleUser:  "USER",
	RoleAdmin: "ADMIN",
}

// ParseRole converts a stored label (case insensitive) to a Role.
func ParseRole(label string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	for r, l := range roleLabels {
		if l == normalized {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", label))
}

func (r Role) String() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return "UNKNOWN"
}

// User is an actor known to the platform.
type User struct {
	id   kernel.UUID
	role Role
}

func NewUser(id kernel.UUID, role Role) (User, error) {
	if err := id.Validate(); err != nil {
		return User{}, err
	}
	if _, ok := roleLabels[role]; !ok {
		return User{}, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", role))
	}
	return User{id: id, role: role}, nil
}

func (u User) ID() kernel.UUID { return u.id }
func (u User) Role() Role      { return u.role }
func (u User) IsAdmin() bool   { return u.role == RoleAdmin }
