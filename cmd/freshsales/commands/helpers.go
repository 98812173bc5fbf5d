// Package commands implements the freshsales CLI command tree.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/freshsales-client/internal/constants"
	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
	"github.com/fivetwenty-io/freshsales-client/pkg/fsclient"
)

// Common static errors used throughout the commands package.
var (
	ErrDomainRequired = errors.New("domain is required (use --domain, FRESHSALES_DOMAIN, or login)")
	ErrAPIKeyRequired = errors.New("API key is required (use --api-key, FRESHSALES_API_KEY, or login)")
	ErrIDRequired     = errors.New("a record id is required")
	ErrInvalidID      = errors.New("record id must be an integer")
)

// createClient builds a Freshsales client from the resolved configuration.
func createClient() (freshsales.Client, error) {
	domain := viper.GetString("domain")
	if domain == "" {
		return nil, ErrDomainRequired
	}

	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	config := &freshsales.Config{
		Domain: domain,
		APIKey: apiKey,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newZapAdapter()
	}

	client, err := fsclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// parseID converts a positional argument into a record id.
func parseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrIDRequired
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, args[0])
	}

	return id, nil
}

// renderJSON writes any value as indented JSON to stdout.
func renderJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// renderYAML writes any value as YAML to stdout.
func renderYAML(value interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return encoder.Close()
}

// recordColumns picks the table columns for a set of records: id plus
// the most common scalar display fields, in a stable order.
func recordColumns(records []freshsales.Record) []string {
	preferred := []string{"id", "display_name", "name", "title", "email", "amount", "status"}
	seen := map[string]bool{}

	for _, record := range records {
		for key, value := range record {
			switch value.(type) {
			case string, float64, bool, nil:
				seen[key] = true
			}
		}
	}

	columns := make([]string, 0, len(preferred))

	for _, key := range preferred {
		if seen[key] {
			columns = append(columns, key)
			delete(seen, key)
		}
	}

	rest := make([]string, 0, len(seen))
	for key := range seen {
		rest = append(rest, key)
	}

	sort.Strings(rest)

	// cap the table width at a handful of columns
	const maxColumns = 8
	for _, key := range rest {
		if len(columns) >= maxColumns {
			break
		}

		columns = append(columns, key)
	}

	return columns
}

func cellValue(record freshsales.Record, column string) string {
	value, ok := record[column]
	if !ok || value == nil {
		return constants.NotAvailable
	}

	switch v := value.(type) {
	case string:
		return truncate(v, constants.StringTruncationLength)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return truncate(fmt.Sprintf("%v", v), constants.StringTruncationLength)
	}
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}

	return value[:max-3] + "..."
}

// renderRecords writes records in the configured output format.
func renderRecords(records []freshsales.Record) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return renderJSON(records)
	case constants.FormatYAML:
		return renderYAML(records)
	default:
		columns := recordColumns(records)
		if len(columns) == 0 {
			fmt.Println("No records found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)

		header := make([]interface{}, len(columns))
		for i, column := range columns {
			header[i] = column
		}

		table.Header(header...)

		for _, record := range records {
			row := make([]interface{}, len(columns))
			for i, column := range columns {
				row[i] = cellValue(record, column)
			}

			_ = table.Append(row...)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// renderRecord writes one record in the configured output format.
func renderRecord(record freshsales.Record) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return renderJSON(record)
	case constants.FormatYAML:
		return renderYAML(record)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Field", "Value")

		keys := make([]string, 0, len(record))
		for key := range record {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			_ = table.Append(key, cellValue(record, key))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// renderViews writes saved views in the configured output format.
func renderViews(views []freshsales.View) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return renderJSON(views)
	case constants.FormatYAML:
		return renderYAML(views)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name")

		for _, view := range views {
			_ = table.Append(strconv.Itoa(view.ID), view.Name)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
