package migration

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dashport/dashport/internal/models"
	"github.com/dashport/dashport/internal/platform"
)

const (
	dashboardsPath = "/api/config/v1/dashboards"
	validatorPath  = dashboardsPath + "/validator"

	// preflightMinimumVersion is the 1.x minor version the preflight
	// calls themselves need, stricter than platform.DefaultMinimumVersion.
	preflightMinimumVersion = 182
)

// Options configures a single dashboard copy.
type Options struct {
	Source      *models.Tenant
	Destination *models.Tenant
	DashboardID string
	NewName     string
	SkipChecks  bool
	DryRun      bool
}

// Copy runs the copy pipeline start to finish: resolve inputs, check
// destination, check source, export, transform, validate, import. The
// first failed stage aborts the whole copy; no destination-side state
// exists until the final import call, so there is nothing to roll back.
func Copy(opts Options, logger func(string)) (*models.CopyResult, error) {
	src, dst, err := resolveTenants(opts)
	if err != nil {
		return nil, err
	}

	if opts.SkipChecks {
		// The classifier still runs: a cluster URL can never be a valid
		// copy endpoint regardless of version or scopes.
		for _, t := range []*models.Tenant{dst, src} {
			if platform.Classify(t.URL) == platform.DeploymentCluster {
				return nil, &CompatibilityError{
					Tenant: t.URL,
					Reason: "multi-tenant cluster endpoints are not supported, use an environment URL",
				}
			}
		}
		logger("Skipping version and permission checks")
	} else {
		logger("Checking destination tenant...")
		if _, err := CheckTenant(dst, "destination", preflightMinimumVersion, logger); err != nil {
			return nil, fmt.Errorf("destination check failed: %w", err)
		}
		logger("Checking source tenant...")
		if _, err := CheckTenant(src, "source", preflightMinimumVersion, logger); err != nil {
			return nil, fmt.Errorf("source check failed: %w", err)
		}
	}

	srcClient := platform.NewClient(src)
	dstClient := platform.NewClient(dst)

	logger(fmt.Sprintf("Exporting dashboard %s from %s...", opts.DashboardID, src.URL))
	var doc models.Document
	if err := srcClient.GetJSON(dashboardsPath+"/"+opts.DashboardID, &doc); err != nil {
		return nil, fmt.Errorf("exporting dashboard %s: %w", opts.DashboardID, err)
	}
	logger(fmt.Sprintf("  exported %q", doc.StringAt("dashboardMetadata", "name")))

	doc = Transform(doc, opts.NewName)
	if opts.NewName != "" {
		logger(fmt.Sprintf("  renamed to %q", opts.NewName))
	}

	logger("Validating dashboard on destination...")
	if err := validate(dstClient, doc, logger); err != nil {
		return nil, err
	}

	if opts.DryRun {
		pretty, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("rendering transformed dashboard: %w", err)
		}
		logger("Dry run, not importing. Transformed dashboard:")
		logger(string(pretty))
		return nil, nil
	}

	logger(fmt.Sprintf("Importing dashboard into %s...", dst.URL))
	body, _, err := dstClient.Post(dashboardsPath, doc)
	if err != nil {
		var apiErr *platform.APIError
		if errors.As(err, &apiErr) {
			logger(fmt.Sprintf("  IMPORT ERROR %d: %s", apiErr.Code, apiErr.Message))
		}
		return nil, fmt.Errorf("importing dashboard: %w", err)
	}

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("parsing import response: %w", err)
	}
	result := &models.CopyResult{
		ID:   created.ID,
		Name: created.Name,
		URL:  dst.URL + "/#dashboard;id=" + created.ID,
	}
	logger(fmt.Sprintf("  created dashboard %s (%q)", result.ID, result.Name))
	logger("  " + result.URL)
	return result, nil
}

// resolveTenants validates the invocation input and fills in the source
// tenant, whose URL and token each default to the destination's when
// unset.
func resolveTenants(opts Options) (src, dst *models.Tenant, err error) {
	if opts.Destination == nil || opts.Destination.URL == "" {
		return nil, nil, &ConfigurationError{Reason: "destination tenant URL is required"}
	}
	if opts.Destination.Token == "" {
		return nil, nil, &ConfigurationError{Reason: "destination API token is required"}
	}
	if opts.DashboardID == "" {
		return nil, nil, &ConfigurationError{Reason: "dashboard ID is required"}
	}

	dst = opts.Destination
	dst.Normalize()

	resolved := models.Tenant{Role: "source"}
	if opts.Source != nil {
		resolved = *opts.Source
	}
	if opts.Source == nil {
		resolved.Insecure = dst.Insecure
	}
	if resolved.URL == "" {
		resolved.URL = dst.URL
	}
	if resolved.Token == "" {
		resolved.Token = dst.Token
	}
	resolved.Normalize()
	return &resolved, dst, nil
}

// validate submits the transformed document to the destination's
// validator endpoint. The validator's HTTP status is reported but not
// gated on; only a transport failure or a structured {error:{...}} body
// stops the copy.
func validate(dst *platform.Client, doc models.Document, logger func(string)) error {
	_, status, err := dst.Post(validatorPath, doc)
	if err != nil {
		var apiErr *platform.APIError
		if errors.As(err, &apiErr) {
			logger(fmt.Sprintf("  VALIDATION ERROR %d: %s", apiErr.Code, apiErr.Message))
			return fmt.Errorf("validating dashboard: %w", err)
		}
		if status == 0 {
			return fmt.Errorf("validating dashboard: %w", err)
		}
		logger(fmt.Sprintf("  validator returned HTTP %d without a structured error, continuing", status))
		return nil
	}
	logger(fmt.Sprintf("  validator returned HTTP %d", status))
	return nil
}
