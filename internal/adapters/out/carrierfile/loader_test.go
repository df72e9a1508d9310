package carrierfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/adapters/out/carrierfile"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carriers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
carriers:
  - name: Royal Mail
    trackingUrl: https://www.royalmail.com/track-your-item#/tracking-results/{trackingNumber}
  - name: DPD
    trackingUrl: https://track.dpd.co.uk/parcels/{trackingNumber}
`)

	catalog, err := carrierfile.Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"DPD", "Royal Mail"}, catalog.Names())

	url, ok := catalog.TrackingURL("royal mail", "AB 123")
	require.True(t, ok)
	assert.Equal(t, "https://www.royalmail.com/track-your-item#/tracking-results/AB+123", url)

	_, ok = catalog.TrackingURL("UPS", "1Z")
	assert.False(t, ok)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	catalog, err := carrierfile.Load("")

	require.NoError(t, err)
	assert.Equal(t, []string{"DHL", "FedEx", "UPS", "USPS"}, catalog.Names())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := carrierfile.Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Rejects(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"empty document", "   \n"},
		{"unknown key", "carriers:\n  - name: DHL\n    url: https://dhl.com/{trackingNumber}\n"},
		{"missing placeholder", "carriers:\n  - name: DHL\n    trackingUrl: https://dhl.com/track\n"},
		{"duplicate name", "carriers:\n  - name: DHL\n    trackingUrl: https://a.com/{trackingNumber}\n" +
			"  - name: dhl\n    trackingUrl: https://b.com/{trackingNumber}\n"},
		{"malformed yaml", "carriers: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := carrierfile.Parse([]byte(tc.content))

			require.Error(t, err)
		})
	}
}

func TestParse_MissingPlaceholderIsInvalidValue(t *testing.T) {
	_, err := carrierfile.Parse([]byte("carriers:\n  - name: DHL\n    trackingUrl: https://dhl.com/track\n"))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
