package migration

// ConfigurationError reports missing or unusable invocation input
// (tenant URL, token, dashboard ID).
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// CompatibilityError reports a tenant that cannot take part in a copy:
// wrong deployment shape, server version too old, or an API token
// missing required scopes.
type CompatibilityError struct {
	Tenant string
	Reason string
}

func (e *CompatibilityError) Error() string {
	return e.Tenant + ": " + e.Reason
}
