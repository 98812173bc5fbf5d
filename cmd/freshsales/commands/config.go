package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/freshsales-client/internal/constants"
)

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := constants.NotAvailable
			if viper.GetString("api_key") != "" {
				apiKey = constants.MaskedSecret
			}

			domain := viper.GetString("domain")
			if domain == "" {
				domain = constants.NotAvailable
			}

			settings := map[string]string{
				"domain":  domain,
				"api_key": apiKey,
				"output":  viper.GetString("output"),
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return renderJSON(settings)
			case constants.FormatYAML:
				return renderYAML(settings)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Setting", "Value")
				_ = table.Append("domain", settings["domain"])
				_ = table.Append("api_key", settings["api_key"])
				_ = table.Append("output", settings["output"])
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set(args[0], args[1])

			configFile := viper.ConfigFileUsed()
			if configFile == "" {
				return saveCredentials(viper.GetString("domain"), viper.GetString("api_key"))
			}

			if err := viper.WriteConfig(); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			return nil
		},
	}
}
