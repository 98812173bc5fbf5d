package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// NewSelectorsCommand creates the selectors command group
func NewSelectorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selectors",
		Short: "Read the account's configuration lists",
	}

	simple := []struct {
		use   string
		short string
		call  func(context.Context, freshsales.SelectorClient) ([]freshsales.Record, error)
	}{
		{
			use:   "owners",
			short: "List the account's users",
			call: func(ctx context.Context, s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.Owners(ctx)
			},
		},
		{
			use:   "deal-stages",
			short: "List every deal stage",
			call: func(ctx context.Context, s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.DealStages(ctx)
			},
		},
		{
			use:   "currencies",
			short: "List the configured currencies",
			call: func(ctx context.Context, s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.Currencies(ctx)
			},
		},
		{
			use:   "deal-reasons",
			short: "List the configured deal closed-lost reasons",
			call: func(ctx context.Context, s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.DealReasons(ctx)
			},
		},
		{
			use:   "deal-types",
			short: "List the configured deal types",
			call: func(ctx context.Context, s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.DealTypes(ctx)
			},
		},
		{
			use:   "deal-pipelines",
			short: "List the configured deal pipelines",
			call: func(ctx context.Context, s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.DealPipelines(ctx)
			},
		},
		{
			use:   "sales-activity-types",
			short: "List the configured sales activity types",
			call: func(ctx context.Context, s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.SalesActivityTypes(ctx)
			},
		},
	}

	for _, entry := range simple {
		call := entry.call
		cmd.AddCommand(&cobra.Command{
			Use:   entry.use,
			Short: entry.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := createClient()
				if err != nil {
					return err
				}

				records, err := call(cmd.Context(), client.Selector())
				if err != nil {
					return err
				}

				return renderRecords(records)
			},
		})
	}

	cmd.AddCommand(newPipelineStagesCommand())
	cmd.AddCommand(newActivityOutcomesCommand())

	return cmd
}

func newPipelineStagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pipeline-stages <pipeline-id>",
		Short: "List the stages of one deal pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipelineID, err := parseID(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			records, err := client.Selector().DealPipelineStages(cmd.Context(), pipelineID)
			if err != nil {
				return fmt.Errorf("listing pipeline %d stages: %w", pipelineID, err)
			}

			return renderRecords(records)
		},
	}
}

func newActivityOutcomesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activity-outcomes <activity-type-id>",
		Short: "List the outcomes of one sales activity type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityTypeID, err := parseID(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			records, err := client.Selector().SalesActivityOutcomes(cmd.Context(), activityTypeID)
			if err != nil {
				return fmt.Errorf("listing activity type %d outcomes: %w", activityTypeID, err)
			}

			return renderRecords(records)
		},
	}
}
