// Package carrierfile reads the carrier catalog from a YAML file:
//
//	carriers:
//	  - name: DHL
//	    trackingUrl: https://www.dhl.com/track?id={trackingNumber}
package carrierfile

import (
	"bytes"
	"fmt"
	"os"

	"storefront/internal/core/domain/model/carrier"

	"gopkg.in/yaml.v3"
)

type document struct {
	Carriers []entry `yaml:"carriers"`
}

type entry struct {
	Name        string `yaml:"name"`
	TrackingURL string `yaml:"trackingUrl"`
}

// Load reads path. An empty path yields carrier.DefaultCatalog().
func Load(path string) (carrier.Catalog, error) {
	if path == "" {
		return carrier.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return carrier.Catalog{}, fmt.Errorf("carrierfile: read %s: %w", path, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return carrier.Catalog{}, fmt.Errorf("carrierfile: %s: %w", path, err)
	}
	return catalog, nil
}

// Parse decodes a catalog document. Unknown keys are rejected.
func Parse(data []byte) (carrier.Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return carrier.Catalog{}, fmt.Errorf("catalog is empty")
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		return carrier.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	entries := make([]carrier.Entry, 0, len(doc.Carriers))
	for _, e := range doc.Carriers {
		entries = append(entries, carrier.Entry{Name: e.Name, URLTemplate: e.TrackingURL})
	}
	return carrier.NewCatalog(entries)
}
