package kernel

import (
	"errors"
	"net/mail"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when a zero-value Contact is used.
var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact")

// Contact is the customer's name, e-mail and phone as captured at checkout.
type Contact struct {
	name  string
	email string
	phone string
	guard guard.ConstructorGuard
}

// NewContact requires a name and a parseable bare e-mail address; phone is optional.
func NewContact(name, email, phone string) (Contact, error) {
	c := Contact{
		name:  strings.TrimSpace(name),
		email: strings.TrimSpace(email),
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(required("name", c.name), c.validateEmail()); err != nil {
		return Contact{}, err
	}

	return c, nil
}

func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }
func (c Contact) Phone() string { return c.phone }

func (c Contact) validateEmail() error {
	if c.email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	parsed, err := mail.ParseAddress(c.email)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if parsed.Address != c.email {
		return errs.NewValueIsInvalidErrorWithCause("email", errors.New("display names are not accepted"))
	}

	return nil
}
