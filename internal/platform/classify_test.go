package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Deployment
	}{
		{"saas environment", "https://foo.live.example.com", DeploymentEnv},
		{"managed environment path", "https://cluster.example.com/e/9ff7cbe4-2a0f-4d47-8085-8a3e80ba3d64", DeploymentEnv},
		{"bare cluster", "https://cluster.example.com", DeploymentCluster},
		{"cluster with unrelated path", "https://cluster.example.com/api", DeploymentCluster},
		{"http saas", "http://bar.live.example.com", DeploymentEnv},
		{"live as last label only", "https://example.live", DeploymentCluster},
		{"unparseable", "https://%zz", DeploymentCluster},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.url))
		})
	}
}

func TestEnvironmentID(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/e/9ff7cbe4-2a0f-4d47-8085-8a3e80ba3d64", "9ff7cbe4-2a0f-4d47-8085-8a3e80ba3d64"},
		{"/e/abc123/", "abc123"},
		{"/e/", ""},
		{"/e", ""},
		{"/api/e/abc", "abc"},
		{"/", ""},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run("path_"+tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, EnvironmentID(tc.path))
		})
	}
}
