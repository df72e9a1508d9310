// Package kernel holds the value objects shared by the storefront domain:
// identifiers, money, postal addresses and customer contacts.
//
// All values are immutable and validated on construction. The zero value of
// each type is "not constructed" and fails Validate, so an aggregate can
// detect fields that were never populated.
package kernel
