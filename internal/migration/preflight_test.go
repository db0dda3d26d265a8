package migration

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashport/dashport/internal/models"
	"github.com/dashport/dashport/internal/platform"
)

func TestRequiredScopes(t *testing.T) {
	assert.Equal(t, []string{"DataExport", "ReadConfig"}, RequiredScopes("source"))
	assert.Equal(t, []string{"DataExport", "WriteConfig"}, RequiredScopes("destination"))
	assert.Equal(t, []string{"DataExport", "WriteConfig"}, RequiredScopes(""))
}

func TestCheckTenant_OK(t *testing.T) {
	ft := newFakeTenant(t)

	report, err := CheckTenant(ft.tenant("source", "tok"), "source", 176, discard)
	require.NoError(t, err)
	assert.Equal(t, "env", report.Deployment)
	assert.Equal(t, "1.184.2.20200305-123456", report.Version)
	assert.Contains(t, report.Scopes, "DataExport")
}

func TestCheckTenant_Cluster(t *testing.T) {
	tenant := &models.Tenant{URL: "https://cluster.example.com", Token: "tok"}

	report, err := CheckTenant(tenant, "source", 176, discard)
	require.Error(t, err)

	var compatErr *CompatibilityError
	require.True(t, errors.As(err, &compatErr))
	assert.Equal(t, string(platform.DeploymentCluster), report.Deployment)
}

func TestCheckTenant_MissingScopes(t *testing.T) {
	ft := newFakeTenant(t)
	ft.scopes = []string{"DataExport"}

	_, err := CheckTenant(ft.tenant("source", "tok"), "source", 176, discard)
	require.Error(t, err)

	var compatErr *CompatibilityError
	require.True(t, errors.As(err, &compatErr))
	// Both the required and the actual sets are reported.
	assert.Contains(t, compatErr.Reason, "required: DataExport, ReadConfig")
	assert.Contains(t, compatErr.Reason, "actual: DataExport")
}
