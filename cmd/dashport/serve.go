package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dashport/dashport/internal/api"
	"github.com/dashport/dashport/internal/config"
	"github.com/dashport/dashport/internal/migration"
	"github.com/dashport/dashport/internal/models"
	"github.com/dashport/dashport/internal/platform"
)

var serveFlags struct {
	listen     string
	configFile string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the copy API server with async jobs and log streaming",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := buildLogger()
		defer log.Sync()

		cfg, err := config.Load(serveFlags.configFile)
		if err != nil {
			return err
		}

		// Flags take precedence over config file values.
		listen := serveFlags.listen
		if listen == "" {
			listen = cfg.Listen
		}
		if listen == "" {
			listen = ":8080"
		}

		server := &api.Server{
			Tenants: models.NewTenantStore(),
			Jobs:    models.NewJobStore(),
			Log:     log,
		}

		// Load pre-configured tenants and verify them early.
		for _, tc := range cfg.Tenants {
			t := &models.Tenant{
				Name:     tc.Name,
				URL:      tc.URL,
				Token:    tc.Token,
				Role:     tc.Role,
				Insecure: tc.Insecure,
				CACert:   tc.CACert,
			}
			if t.Role == "" {
				t.Role = "source"
			}
			t.Normalize()
			server.Tenants.Create(t)
			log.Info("loaded tenant", zap.String("name", t.Name), zap.String("url", t.URL))

			report, err := migration.CheckTenant(t, t.Role, platform.DefaultMinimumVersion,
				func(msg string) { log.Debug(msg) })
			if err != nil {
				log.Warn("tenant check failed", zap.String("name", t.Name), zap.Error(err))
				continue
			}
			log.Info("tenant check ok",
				zap.String("name", t.Name),
				zap.String("deployment", report.Deployment),
				zap.String("version", report.Version),
			)
		}

		log.Info("dashport starting", zap.String("version", version), zap.String("listen", listen))
		return http.ListenAndServe(listen, api.NewRouter(server))
	},
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.listen, "listen", "", "HTTP listen address (default :8080)")
	f.StringVar(&serveFlags.configFile, "config", "", "Path to config file (YAML)")
}
