/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/fwtab/pkg/api"
	"github.com/ssargent/fwtab/pkg/config"
	"github.com/ssargent/fwtab/pkg/logging"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the fwtab REST API server, exposing decoded firmware tables as JSON.

Endpoints: /api/v1/acpi, /api/v1/acpi/{sig}, /api/v1/smbios, /api/v1/health,
and Prometheus metrics on /metrics. With --api-key set, requests must carry
it in the X-API-Key header.

Examples:
  fwtab serve --port=8080
  fwtab --source=dir --dir=./dumps serve --api-key=secret
  fwtab serve --config ~/.config/fwtab/config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			loaded, err := config.LoadConfig(path)
			if err != nil {
				return err
			}
			cfg = loaded
			if cfg.Logging.Level == "debug" && !cmd.Flags().Changed("debug") {
				human, _ := cmd.Flags().GetBool("human")
				logging.Init(true, human)
			}
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey, _ = cmd.Flags().GetString("api-key")
		}
		raw := rawTable(cmd)

		// Command-line --source wins over the config file's source block.
		source := tableSource(cmd)
		if cfg.Source.Kind != "" && !cmd.Flags().Changed("source") {
			configured, err := buildSource(cfg.Source.Kind, cfg.Source.Dir)
			if err != nil {
				return err
			}
			source = configured
		}

		warnIfUnprivileged(cmd)
		return api.StartServer(source, api.ServerConfig{
			Port:   cfg.Port,
			Bind:   cfg.Bind,
			APIKey: cfg.APIKey,
			Raw:    raw,
		})
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key required in X-API-Key (empty disables auth)")
	serveCmd.Flags().String("config", "", "Path to yaml config file")
	serveCmd.Flags().Bool("raw", false, "Table has no RawSMBIOSData wrapper (sysfs-style dump)")
	rootCmd.AddCommand(serveCmd)
}
