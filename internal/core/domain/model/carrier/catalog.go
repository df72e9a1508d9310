// Package carrier maps shipping carrier names to public tracking pages.
package carrier

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"storefront/internal/pkg/errs"
)

// TrackingNumberPlaceholder is replaced with the URL-escaped tracking number.
const TrackingNumberPlaceholder = "{trackingNumber}"

// Entry describes one carrier.
type Entry struct {
	Name        string
	URLTemplate string
}

// Catalog is an immutable, case-insensitive lookup of carriers.
type Catalog struct {
	entries map[string]Entry
}

// NewCatalog validates every entry. Names must be unique ignoring case and
// templates must be absolute http(s) URLs containing the placeholder.
func NewCatalog(entries []Entry) (Catalog, error) {
	catalog := Catalog{entries: make(map[string]Entry, len(entries))}

	var problems []error
	for i, entry := range entries {
		entry.Name = strings.TrimSpace(entry.Name)
		entry.URLTemplate = strings.TrimSpace(entry.URLTemplate)

		if err := validateEntry(entry); err != nil {
			problems = append(problems, fmt.Errorf("carrier %d: %w", i, err))
			continue
		}

		key := strings.ToLower(entry.Name)
		if _, exists := catalog.entries[key]; exists {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"carrier name", fmt.Errorf("%q is defined more than once", entry.Name)))
			continue
		}
		catalog.entries[key] = entry
	}
	if len(problems) > 0 {
		return Catalog{}, errors.Join(problems...)
	}

	return catalog, nil
}

// DefaultCatalog covers the carriers the warehouse ships with out of the box.
func DefaultCatalog() Catalog {
	catalog, err := NewCatalog([]Entry{
		{Name: "DHL", URLTemplate: "https://www.dhl.com/en/express/tracking.html?AWB={trackingNumber}"},
		{Name: "UPS", URLTemplate: "https://www.ups.com/track?tracknum={trackingNumber}"},
		{Name: "FedEx", URLTemplate: "https://www.fedex.com/fedextrack/?trknbr={trackingNumber}"},
		{Name: "USPS", URLTemplate: "https://tools.usps.com/go/TrackConfirmAction?tLabels={trackingNumber}"},
	})
	if err != nil {
		panic(err)
	}
	return catalog
}

// TrackingURL returns the tracking page for the shipment, or false when the
// carrier is not in the catalog.
func (c Catalog) TrackingURL(carrierName, trackingNumber string) (string, bool) {
	entry, ok := c.entries[strings.ToLower(strings.TrimSpace(carrierName))]
	if !ok {
		return "", false
	}
	escaped := url.QueryEscape(strings.TrimSpace(trackingNumber))
	return strings.ReplaceAll(entry.URLTemplate, TrackingNumberPlaceholder, escaped), true
}

// Names lists the configured carriers, sorted.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		names = append(names, entry.Name)
	}
	sort.Strings(names)
	return names
}

func (c Catalog) Len() int {
	return len(c.entries)
}

func validateEntry(entry Entry) error {
	if entry.Name == "" {
		return errs.NewValueIsRequiredError("carrier name")
	}
	if !strings.Contains(entry.URLTemplate, TrackingNumberPlaceholder) {
		return errs.NewValueIsInvalidErrorWithCause(
			"urlTemplate",
			fmt.Errorf("template for %s must contain %s", entry.Name, TrackingNumberPlaceholder),
		)
	}
	parsed, err := url.Parse(strings.ReplaceAll(entry.URLTemplate, TrackingNumberPlaceholder, "x"))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("urlTemplate", err)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" || parsed.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"urlTemplate",
			fmt.Errorf("template for %s must be an absolute http(s) URL", entry.Name),
		)
	}
	return nil
}
