package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMinimumVersion is the minimum 1.x minor version the platform
// must run for the configuration API calls this tool makes.
const DefaultMinimumVersion = 176

// clusterVersionResponse is the parsed /api/v1/config/clusterversion body.
type clusterVersionResponse struct {
	Version string `json:"version"`
}

// ClusterVersion fetches the tenant's server version string, e.g.
// "1.182.0.20190930-172630".
func (c *Client) ClusterVersion() (string, error) {
	var resp clusterVersionResponse
	if err := c.GetJSON("/api/v1/config/clusterversion", &resp); err != nil {
		return "", err
	}
	if resp.Version == "" {
		return "", fmt.Errorf("cluster version response missing version field")
	}
	return resp.Version, nil
}

// MeetsMinimum reports whether a dotted version string satisfies the
// given minimum minor version. Only major version 1 is gated; any other
// major is treated as current (the SaaS offering always is). A version
// string without a readable major.minor fails the check.
func MeetsMinimum(version string, minimumMinor int) bool {
	parts := parseVersionParts(version)
	if len(parts) == 0 {
		return false
	}
	if parts[0] != 1 {
		return true
	}
	if len(parts) < 2 {
		return false
	}
	return parts[1] >= minimumMinor
}

// parseVersionParts reads leading numeric components of a dotted version
// string, stopping at the first non-numeric component (build suffixes
// like "20190930-172630" are ignored).
func parseVersionParts(v string) []int {
	parts := strings.Split(v, ".")
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			break
		}
		result = append(result, n)
	}
	return result
}
