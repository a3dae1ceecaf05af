package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tender-dapp/internal/app"
	"tender-dapp/internal/config"
	"tender-dapp/utils"
)

// Output formats for list commands
const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// NewRootCmd creates the tenderd command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tenderd",
		Short:         "Tender management service backed by the Tender contract",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "config.yaml", "Path to the config file")

	root.AddCommand(
		newServeCmd(),
		newTendersCmd(),
		newAccountsCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		utils.Fatal("tenderd: command failed", map[string]any{"error": err.Error()})
	}
}

// loadApp reads the config named by --config and builds the application
func loadApp(ctx context.Context, cmd *cobra.Command) (*app.App, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	utils.SetLevel(cfg.Log.Level)

	return app.Build(ctx, cfg)
}

// printOutput writes v to w in the requested format
func printOutput(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q, use %q or %q", format, outputJSON, outputYAML)
	}
}
