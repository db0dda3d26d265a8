package platform

import (
	"net/url"
	"strings"
)

// Deployment classifies the shape of the endpoint behind a tenant URL.
type Deployment string

const (
	// DeploymentEnv is a single-tenant environment endpoint.
	DeploymentEnv Deployment = "env"
	// DeploymentCluster is a multi-tenant cluster endpoint. The copy
	// pipeline refuses to operate against one.
	DeploymentCluster Deployment = "cluster"
)

// Classify determines whether a normalized tenant URL addresses a
// single-tenant environment or a bare multi-tenant cluster. SaaS
// environments look like <env-id>.live.<domain>; managed environments
// are addressed as /e/<environment-id> on the cluster host. Anything
// else is a cluster endpoint.
func Classify(rawURL string) Deployment {
	u, err := url.Parse(rawURL)
	if err != nil {
		return DeploymentCluster
	}

	labels := strings.Split(u.Hostname(), ".")
	if len(labels) >= 3 && labels[1] == "live" {
		return DeploymentEnv
	}

	if EnvironmentID(u.Path) != "" {
		return DeploymentEnv
	}
	return DeploymentCluster
}

// EnvironmentID extracts the environment identifier from an /e/<id> URL
// path, or "" when the path does not address an environment.
func EnvironmentID(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, seg := range segments {
		if seg == "e" && i+1 < len(segments) && segments[i+1] != "" {
			return segments[i+1]
		}
	}
	return ""
}
