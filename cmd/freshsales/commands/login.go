package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/freshsales-client/internal/constants"
	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
	"github.com/fivetwenty-io/freshsales-client/pkg/fsclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		domain string
		apiKey string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Freshsales credentials",
		Long:  "Verify a domain and API key against the Freshsales API and save them to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if domain == "" {
				domain = viper.GetString("domain")
			}

			if domain == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Domain (e.g. acme for acme.freshsales.io): ")
				domain, _ = reader.ReadString('\n')
				domain = strings.TrimSpace(domain)
			}

			if domain == "" {
				return ErrDomainRequired
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				keyBytes, err := term.ReadPassword(int(syscall.Stdin))

				fmt.Println()

				if err != nil {
					return fmt.Errorf("reading API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(keyBytes))
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			domain = fsclient.NormalizeDomain(domain)

			// credential verification should fail fast
			client, err := fsclient.New(&freshsales.Config{
				Domain:      domain,
				APIKey:      apiKey,
				HTTPTimeout: constants.ShortHTTPTimeout,
			})
			if err != nil {
				return fmt.Errorf("creating client: %w", err)
			}

			// A cheap authenticated read verifies the credentials
			_, err = client.Selector().Owners(context.Background())
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			if err := saveCredentials(domain, apiKey); err != nil {
				return err
			}

			fmt.Printf("Logged in to %s.freshsales.io\n", domain)

			return nil
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "", "Freshsales account subdomain")
	cmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "Freshsales API key")

	return cmd
}

func saveCredentials(domain, apiKey string) error {
	viper.Set("domain", domain)
	viper.Set("api_key", apiKey)

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		configDir := filepath.Join(home, ".freshsales")
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	// the file holds the API key
	if err := os.Chmod(configFile, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("restricting config file permissions: %w", err)
	}

	return nil
}
