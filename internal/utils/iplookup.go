package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const ipLookupURL = "https://api.ipify.org?format=json"

// LookupPublicIP asks an external echo service for the caller's public IP.
// Used as a fallback when the request itself carries no usable client
// address; callers treat failure as "no IP" rather than an error condition.
func LookupPublicIP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ipLookupURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ip lookup: unexpected status %d", resp.StatusCode)
	}
	var out struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.IP == "" {
		return "", fmt.Errorf("ip lookup: empty response")
	}
	return out.IP, nil
}
