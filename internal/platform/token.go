package platform

import (
	"encoding/json"
	"fmt"
)

// Scope names the configuration API cares about.
const (
	ScopeDataExport  = "DataExport"
	ScopeReadConfig  = "ReadConfig"
	ScopeWriteConfig = "WriteConfig"
)

// tokenLookupResponse is the parsed /api/v1/tokens/lookup body.
type tokenLookupResponse struct {
	Scopes []string `json:"scopes"`
}

// TokenScopes resolves the scope set attached to the client's API token
// via the token lookup endpoint.
func (c *Client) TokenScopes() ([]string, error) {
	body, _, err := c.Post("/api/v1/tokens/lookup", map[string]string{"token": c.token})
	if err != nil {
		return nil, err
	}
	var resp tokenLookupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing token lookup response: %w", err)
	}
	return resp.Scopes, nil
}

// MissingScopes returns the required scopes absent from actual, in the
// order they were required. Empty means the token is sufficient.
func MissingScopes(required, actual []string) []string {
	have := make(map[string]bool, len(actual))
	for _, s := range actual {
		have[s] = true
	}
	var missing []string
	for _, s := range required {
		if !have[s] {
			missing = append(missing, s)
		}
	}
	return missing
}
