package devices

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		userAgent     string
		wantDevice    string
		browserPrefix string
		osPrefix      string
	}{
		{
			name:          "chrome on windows desktop",
			userAgent:     "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36",
			wantDevice:    "desktop",
			browserPrefix: "Chrome ",
			osPrefix:      "Windows",
		},
		{
			name:          "safari on iphone",
			userAgent:     "Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Mobile/15E148 Safari/604.1",
			wantDevice:    "mobile",
			browserPrefix: "Safari ",
			osPrefix:      "iOS",
		},
		{
			name:          "safari on ipad",
			userAgent:     "Mozilla/5.0 (iPad; CPU OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Mobile/15E148 Safari/604.1",
			wantDevice:    "tablet",
			browserPrefix: "Safari ",
			osPrefix:      "iOS",
		},
		{
			name:          "firefox on linux desktop",
			userAgent:     "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0",
			wantDevice:    "desktop",
			browserPrefix: "Firefox ",
			osPrefix:      "Linux",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.userAgent)
			assert.Equal(t, tt.wantDevice, got.Device)
			assert.True(t, strings.HasPrefix(got.Browser, tt.browserPrefix),
				"browser %q does not start with %q", got.Browser, tt.browserPrefix)
			assert.True(t, strings.HasPrefix(got.OS, tt.osPrefix),
				"os %q does not start with %q", got.OS, tt.osPrefix)
		})
	}
}

func TestClassifyEmptyUserAgent(t *testing.T) {
	got := Classify("")
	assert.Equal(t, "desktop", got.Device)
	assert.Equal(t, "undefined undefined", got.Browser)
	assert.Equal(t, "undefined undefined", got.OS)
}
