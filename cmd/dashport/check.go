package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dashport/dashport/internal/migration"
	"github.com/dashport/dashport/internal/models"
	"github.com/dashport/dashport/internal/platform"
)

var checkFlags struct {
	url        string
	token      string
	role       string
	insecure   bool
	minVersion int
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the compatibility preflight against one tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := buildLogger()
		defer log.Sync()

		if checkFlags.url == "" || checkFlags.token == "" {
			return fmt.Errorf("--url and --token are required")
		}
		t := &models.Tenant{
			URL:      checkFlags.url,
			Token:    checkFlags.token,
			Role:     checkFlags.role,
			Insecure: checkFlags.insecure,
		}
		t.Normalize()

		report, err := migration.CheckTenant(t, checkFlags.role, checkFlags.minVersion,
			func(msg string) { log.Info(msg) })
		if err != nil {
			return err
		}

		fmt.Printf("Tenant %s is compatible as a %s\n", t.URL, checkFlags.role)
		fmt.Printf("  deployment: %s\n", report.Deployment)
		fmt.Printf("  version:    %s\n", report.Version)
		fmt.Printf("  scopes:     %s\n", strings.Join(report.Scopes, ", "))
		return nil
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringVar(&checkFlags.url, "url", "", "Tenant URL (required)")
	f.StringVar(&checkFlags.token, "token", "", "API token (required)")
	f.StringVar(&checkFlags.role, "role", "source", "Role to check scopes for: source or destination")
	f.BoolVar(&checkFlags.insecure, "insecure", false, "Skip TLS certificate verification")
	f.IntVar(&checkFlags.minVersion, "min-version", platform.DefaultMinimumVersion, "Minimum required 1.x minor version")
}
