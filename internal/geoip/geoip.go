package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "http://ip-api.com"

// Client queries an ip-api.com compatible provider for coarse IP geolocation.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Result is the provider's answer for a single IP.
type Result struct {
	Status     string  `json:"status"`
	Country    string  `json:"country"`
	RegionName string  `json:"regionName"`
	City       string  `json:"city"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Isp        string  `json:"isp"`
}

// NewClient creates a geolocation client. An empty baseURL selects the public
// ip-api.com endpoint. The provider itself imposes no timeout, so the client
// bounds every lookup at 5 seconds.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Lookup resolves geo metadata for ip. Any transport failure, non-200
// response or non-"success" provider status is returned as an error; callers
// decide whether that is fatal.
func (c *Client) Lookup(ctx context.Context, ip string) (*Result, error) {
	reqURL := fmt.Sprintf("%s/json/%s", c.baseURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo provider returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if result.Status != "success" {
		return nil, fmt.Errorf("geo provider returned status %q for %s", result.Status, ip)
	}

	return &result, nil
}

// Lookupable reports whether ip is worth sending to the provider. Loopback
// and empty addresses never resolve to anything useful.
func Lookupable(ip string) bool {
	return ip != "" && ip != "::1" && ip != "127.0.0.1"
}
