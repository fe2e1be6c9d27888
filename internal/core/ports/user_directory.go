package ports

import (
	"context"
	"fmt"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/errs"
)

// Role is a user's role in the platform. Role checks gate who may invoke
// which operation; ownership checks gate which rows a customer may touch.
type Role string

const (
	RoleCustomer  Role = "CUSTOMER"
	RoleAdmin     Role = "ADMIN"
	RoleDesigner  Role = "DESIGNER"
	RoleValidator Role = "VALIDATOR"
	RolePrintshop Role = "PRINT_SHOP"
)

func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleAdmin, RoleDesigner, RoleValidator, RolePrintshop:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a role", string(r)))
}

func (r Role) String() string {
	return string(r)
}

// User is the directory's view of an account.
type User struct {
	ID   kernel.UUID
	Role Role
	Name string
}

// UserDirectory resolves the acting user for authorization decisions.
type UserDirectory interface {
	// GetUser retrieves a user by identifier, or errs.ErrObjectNotFound when
	// the account does not exist.
	GetUser(ctx context.Context, id kernel.UUID) (User, error)
}
