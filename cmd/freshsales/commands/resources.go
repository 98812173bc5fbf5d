package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// resourceAccessor resolves the per-kind client from the facade.
type resourceAccessor func(freshsales.Client) freshsales.ResourceClient

// newResourceCommandGroup builds the shared command set every resource
// kind exposes: views, list, get, create, update, delete, and, when the
// kind supports them, forget and bulk-delete.
func newResourceCommandGroup(use, short string, accessor resourceAccessor) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.AddCommand(newViewsCommand(accessor))
	cmd.AddCommand(newListCommand(use, accessor))
	cmd.AddCommand(newGetCommand(use, accessor))
	cmd.AddCommand(newCreateCommand(use, accessor))
	cmd.AddCommand(newUpdateCommand(use, accessor))
	cmd.AddCommand(newDeleteCommand(use, accessor))
	cmd.AddCommand(newForgetCommand(use, accessor))
	cmd.AddCommand(newBulkDeleteCommand(use, accessor))

	return cmd
}

func newViewsCommand(accessor resourceAccessor) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List saved views",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			views, err := accessor(client).Views(cmd.Context())
			if err != nil {
				return err
			}

			return renderViews(views)
		},
	}
}

func newListCommand(kind string, accessor resourceAccessor) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list <view-id>",
		Short: "List the records a view selects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viewID, err := parseID(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			records, err := accessor(client).ListAll(cmd.Context(), viewID, limit)
			if err != nil {
				return fmt.Errorf("listing %s: %w", kind, err)
			}

			return renderRecords(records)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records (0 for all)")

	return cmd
}

func newGetCommand(kind string, accessor resourceAccessor) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := accessor(client).Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("getting %s %d: %w", kind, id, err)
			}

			return renderRecord(record)
		},
	}
}

func newCreateCommand(kind string, accessor resourceAccessor) *cobra.Command {
	return &cobra.Command{
		Use:   "create <json>",
		Short: "Create a record from a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseRecord(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			envelope, err := accessor(client).Create(cmd.Context(), data)
			if err != nil {
				return fmt.Errorf("creating %s: %w", kind, err)
			}

			return renderJSON(envelope)
		},
	}
}

func newUpdateCommand(kind string, accessor resourceAccessor) *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <json>",
		Short: "Update fields of an existing record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}

			data, err := parseRecord(args[1])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			envelope, err := accessor(client).Update(cmd.Context(), id, data)
			if err != nil {
				return fmt.Errorf("updating %s %d: %w", kind, id, err)
			}

			return renderJSON(envelope)
		},
	}
}

func parseRecord(raw string) (freshsales.Record, error) {
	var data freshsales.Record

	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("parsing record JSON: %w", err)
	}

	return data, nil
}

func newDeleteCommand(kind string, accessor resourceAccessor) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := accessor(client).Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("deleting %s %d: %w", kind, id, err)
			}

			fmt.Printf("Deleted %s %d\n", kind, id)

			return nil
		},
	}
}

func newForgetCommand(kind string, accessor resourceAccessor) *cobra.Command {
	return &cobra.Command{
		Use:   "forget <id>",
		Short: "Permanently erase one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := accessor(client).Forget(cmd.Context(), id); err != nil {
				return fmt.Errorf("forgetting %s %d: %w", kind, id, err)
			}

			fmt.Printf("Forgot %s %d\n", kind, id)

			return nil
		},
	}
}

func newBulkDeleteCommand(kind string, accessor resourceAccessor) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-delete <id>...",
		Short: "Delete several records in one call",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := accessor(client).BulkDelete(cmd.Context(), ids); err != nil {
				return fmt.Errorf("bulk deleting %s: %w", kind, err)
			}

			fmt.Printf("Deleted %d %s\n", len(ids), kind)

			return nil
		},
	}
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))

	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidID, arg)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// NewContactsCommand creates the contacts command group
func NewContactsCommand() *cobra.Command {
	accessor := func(c freshsales.Client) freshsales.ResourceClient { return c.Contacts() }

	cmd := newResourceCommandGroup("contacts", "Manage contacts", accessor)
	cmd.AddCommand(newContactActivitiesCommand())
	cmd.AddCommand(newContactAppointmentsCommand())

	return cmd
}

func newContactActivitiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activities <id>",
		Short: "List the activity feed of one contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			activities, err := client.Contacts().Activities(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("listing contact %d activities: %w", id, err)
			}

			return renderRecords(activities)
		},
	}
}

func newContactAppointmentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "appointments <id>",
		Short: "List the appointments of one contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			appointments, err := client.Contacts().Appointments(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("listing contact %d appointments: %w", id, err)
			}

			return renderRecords(appointments)
		},
	}
}

// NewAccountsCommand creates the accounts command group
func NewAccountsCommand() *cobra.Command {
	accessor := func(c freshsales.Client) freshsales.ResourceClient { return c.Accounts() }

	cmd := newResourceCommandGroup("accounts", "Manage sales accounts", accessor)
	cmd.AddCommand(newAccountsBulkDeleteAssociatedCommand())

	return cmd
}

func newAccountsBulkDeleteAssociatedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-delete-cascade <id>...",
		Short: "Delete accounts together with their contacts and deals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			_, err = client.Accounts().BulkDeleteWithAssociations(cmd.Context(), ids, true)
			if err != nil {
				return fmt.Errorf("bulk deleting accounts: %w", err)
			}

			fmt.Printf("Deleted %d accounts with associations\n", len(ids))

			return nil
		},
	}
}

// NewDealsCommand creates the deals command group
func NewDealsCommand() *cobra.Command {
	return newResourceCommandGroup("deals", "Manage deals",
		func(c freshsales.Client) freshsales.ResourceClient { return c.Deals() })
}

// NewLeadsCommand creates the leads command group
func NewLeadsCommand() *cobra.Command {
	return newResourceCommandGroup("leads", "Manage leads",
		func(c freshsales.Client) freshsales.ResourceClient { return c.Leads() })
}

// NewTasksCommand creates the tasks command group
func NewTasksCommand() *cobra.Command {
	return newResourceCommandGroup("tasks", "Manage tasks",
		func(c freshsales.Client) freshsales.ResourceClient { return c.Tasks() })
}

// NewNotesCommand creates the notes command group
func NewNotesCommand() *cobra.Command {
	return newResourceCommandGroup("notes", "Manage notes",
		func(c freshsales.Client) freshsales.ResourceClient { return c.Notes() })
}

// NewSalesActivitiesCommand creates the sales activities command group
func NewSalesActivitiesCommand() *cobra.Command {
	cmd := newResourceCommandGroup("sales-activities", "Manage sales activities",
		func(c freshsales.Client) freshsales.ResourceClient { return c.SalesActivities() })
	cmd.Aliases = []string{"activities"}

	return cmd
}
