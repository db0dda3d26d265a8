package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashport/dashport/internal/migration"
	"github.com/dashport/dashport/internal/models"
)

var copyFlags struct {
	destURL     string
	destToken   string
	sourceURL   string
	sourceToken string
	dashboard   string
	newName     string
	skipChecks  bool
	insecure    bool
	dryRun      bool
}

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy one dashboard from a source tenant to a destination tenant",
	Long: `Copy exports a dashboard from the source tenant, strips its identity
and ownership fields, validates it against the destination, and creates
it there. Source URL and token default to the destination values, which
copies a dashboard within one tenant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := buildLogger()
		defer log.Sync()

		var src *models.Tenant
		if copyFlags.sourceURL != "" || copyFlags.sourceToken != "" {
			src = &models.Tenant{
				URL:      copyFlags.sourceURL,
				Token:    copyFlags.sourceToken,
				Role:     "source",
				Insecure: copyFlags.insecure,
			}
		}
		dst := &models.Tenant{
			URL:      copyFlags.destURL,
			Token:    copyFlags.destToken,
			Role:     "destination",
			Insecure: copyFlags.insecure,
		}

		result, err := migration.Copy(migration.Options{
			Source:      src,
			Destination: dst,
			DashboardID: copyFlags.dashboard,
			NewName:     copyFlags.newName,
			SkipChecks:  copyFlags.skipChecks,
			DryRun:      copyFlags.dryRun,
		}, func(msg string) { log.Info(msg) })
		if err != nil {
			return err
		}

		if result != nil {
			fmt.Printf("Created dashboard %s (%q)\n", result.ID, result.Name)
			fmt.Printf("Open %s in your browser\n", result.URL)
		}
		return nil
	},
}

func init() {
	f := copyCmd.Flags()
	f.StringVar(&copyFlags.destURL, "dest-url", "", "Destination tenant URL (required)")
	f.StringVar(&copyFlags.destToken, "dest-token", "", "Destination API token (required)")
	f.StringVar(&copyFlags.sourceURL, "source-url", "", "Source tenant URL (defaults to destination)")
	f.StringVar(&copyFlags.sourceToken, "source-token", "", "Source API token (defaults to destination)")
	f.StringVar(&copyFlags.dashboard, "dashboard", "", "ID of the dashboard to copy (required)")
	f.StringVar(&copyFlags.newName, "name", "", "Rename the dashboard on the destination")
	f.BoolVar(&copyFlags.skipChecks, "skip-checks", false, "Skip version and permission preflight checks")
	f.BoolVar(&copyFlags.insecure, "insecure", false, "Skip TLS certificate verification")
	f.BoolVar(&copyFlags.dryRun, "dry-run", false, "Validate and print the transformed dashboard without importing")
}
