package migration

import (
	"fmt"
	"strings"

	"github.com/dashport/dashport/internal/models"
	"github.com/dashport/dashport/internal/platform"
)

// Required token scopes per tenant role.
var (
	sourceScopes      = []string{platform.ScopeDataExport, platform.ScopeReadConfig}
	destinationScopes = []string{platform.ScopeDataExport, platform.ScopeWriteConfig}
)

// RequiredScopes returns the scope set a tenant's token must carry for
// the given role ("source" or "destination").
func RequiredScopes(role string) []string {
	if role == "source" {
		return sourceScopes
	}
	return destinationScopes
}

// TenantReport is the outcome of the preflight guards for one tenant.
type TenantReport struct {
	Deployment string   `json:"deployment"`
	Version    string   `json:"version,omitempty"`
	Scopes     []string `json:"scopes,omitempty"`
}

// CheckTenant runs the compatibility guards against one tenant: endpoint
// classification, minimum server version, and token scopes for the given
// role. Every failure is terminal.
func CheckTenant(t *models.Tenant, role string, minimumVersion int, logger func(string)) (*TenantReport, error) {
	report := &TenantReport{}

	deployment := platform.Classify(t.URL)
	report.Deployment = string(deployment)
	if deployment == platform.DeploymentCluster {
		return report, &CompatibilityError{
			Tenant: t.URL,
			Reason: "multi-tenant cluster endpoints are not supported, use an environment URL",
		}
	}
	logger(fmt.Sprintf("  %s: single-tenant environment", t.URL))

	client := platform.NewClient(t)

	version, err := client.ClusterVersion()
	if err != nil {
		return report, fmt.Errorf("reading cluster version of %s: %w", t.URL, err)
	}
	report.Version = version
	if !platform.MeetsMinimum(version, minimumVersion) {
		return report, &CompatibilityError{
			Tenant: t.URL,
			Reason: fmt.Sprintf("server version %s is below required 1.%d", version, minimumVersion),
		}
	}
	logger(fmt.Sprintf("  %s: version %s OK", t.URL, version))

	scopes, err := client.TokenScopes()
	if err != nil {
		return report, fmt.Errorf("looking up token scopes on %s: %w", t.URL, err)
	}
	report.Scopes = scopes
	required := RequiredScopes(role)
	if missing := platform.MissingScopes(required, scopes); len(missing) > 0 {
		return report, &CompatibilityError{
			Tenant: t.URL,
			Reason: fmt.Sprintf("token is missing scopes %s (required: %s, actual: %s)",
				strings.Join(missing, ", "), strings.Join(required, ", "), strings.Join(scopes, ", ")),
		}
	}
	logger(fmt.Sprintf("  %s: token scopes OK (%s)", t.URL, strings.Join(required, ", ")))

	return report, nil
}
