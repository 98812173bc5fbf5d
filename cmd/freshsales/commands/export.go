package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// ErrUnknownResourceKind rejects export targets outside the supported set.
var ErrUnknownResourceKind = errors.New("unknown resource kind")

// NewExportCommand creates the export command. Records stream out as one
// JSON document per line, either to stdout or to a NATS subject.
func NewExportCommand() *cobra.Command {
	var (
		natsURL string
		subject string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "export <kind> <view-id>",
		Short: "Stream a view's records as JSON lines",
		Long: `Stream every record a view selects, one JSON document per line.

Without --nats-url records go to stdout. With --nats-url each record is
published to the given subject (default "freshsales.export.<kind>").`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]

			viewID, err := parseID(args[1:])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resource, err := resourceByKind(client, kind)
			if err != nil {
				return err
			}

			publish, closer, err := buildPublisher(natsURL, subject, kind)
			if err != nil {
				return err
			}
			defer closer()

			count := 0
			iterator := resource.Iterate(cmd.Context(), viewID, limit)

			err = iterator.ForEach(func(record freshsales.Record) error {
				data, err := json.Marshal(record)
				if err != nil {
					return fmt.Errorf("encoding record: %w", err)
				}

				if err := publish(data); err != nil {
					return err
				}

				count++

				return nil
			})
			if err != nil {
				return fmt.Errorf("exporting %s view %d: %w", kind, viewID, err)
			}

			fmt.Fprintf(os.Stderr, "Exported %d records\n", count)

			return nil
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server URL (publishes instead of printing)")
	cmd.Flags().StringVar(&subject, "subject", "", "NATS subject (default freshsales.export.<kind>)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records (0 for all)")

	return cmd
}

func resourceByKind(client freshsales.Client, kind string) (freshsales.ResourceClient, error) {
	switch kind {
	case "contacts":
		return client.Contacts(), nil
	case "accounts":
		return client.Accounts(), nil
	case "deals":
		return client.Deals(), nil
	case "leads":
		return client.Leads(), nil
	case "tasks":
		return client.Tasks(), nil
	case "notes":
		return client.Notes(), nil
	case "sales-activities":
		return client.SalesActivities(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownResourceKind, kind)
	}
}

// buildPublisher returns a per-record sink and its cleanup function.
func buildPublisher(natsURL, subject, kind string) (func([]byte) error, func(), error) {
	if natsURL == "" {
		return func(data []byte) error {
			_, err := fmt.Println(string(data))
			if err != nil {
				return fmt.Errorf("writing record: %w", err)
			}

			return nil
		}, func() {}, nil
	}

	if subject == "" {
		subject = "freshsales.export." + kind
	}

	conn, err := nats.Connect(natsURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	publish := func(data []byte) error {
		if err := conn.Publish(subject, data); err != nil {
			return fmt.Errorf("publishing record: %w", err)
		}

		return nil
	}

	closer := func() {
		// deliver everything before closing
		_ = conn.Flush()
		conn.Close()
	}

	return publish, closer, nil
}
