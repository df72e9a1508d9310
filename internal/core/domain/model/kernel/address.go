package kernel

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")

// Address is a structured postal address. Line2 and Region are optional.
type Address struct {
	line1      string
	line2      string
	city       string
	region     string
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// NewAddress trims all parts and requires line1, city, postal code and country.
func NewAddress(line1, line2, city, region, postalCode, country string) (Address, error) {
	a := Address{
		line1:      strings.TrimSpace(line1),
		line2:      strings.TrimSpace(line2),
		city:       strings.TrimSpace(city),
		region:     strings.TrimSpace(region),
		postalCode: strings.TrimSpace(postalCode),
		country:    strings.ToUpper(strings.TrimSpace(country)),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("line1", a.line1),
		required("city", a.city),
		required("postalCode", a.postalCode),
		required("country", a.country),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Line1() string      { return a.line1 }
func (a Address) Line2() string      { return a.line2 }
func (a Address) City() string       { return a.city }
func (a Address) Region() string     { return a.region }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Country() string    { return a.country }

// Lines returns the address as printable lines, skipping empty optional parts.
func (a Address) Lines() []string {
	lines := []string{a.line1}
	if a.line2 != "" {
		lines = append(lines, a.line2)
	}

	cityLine := a.city
	if a.region != "" {
		cityLine += ", " + a.region
	}
	cityLine += " " + a.postalCode

	return append(lines, cityLine, a.country)
}

func required(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
