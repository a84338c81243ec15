package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pmreport/internal/domain/refcache"
	"pmreport/internal/domain/report"
)

type listOptions struct {
	search  string
	status  string
	manager int
	overdue string
}

func newListCommand(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:       "list {employees|projects|managers|statuses|roles}",
		Short:     "List the entities and catalogs reports can be filtered by",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"employees", "projects", "managers", "statuses", "roles"},
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, release, err := root.openProvider(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()

			switch args[0] {
			case "employees":
				entries, err := filteredEntries(cmd, opts, provider, report.KindEmployeePerformance)
				if err != nil {
					return err
				}
				for _, entry := range entries {
					fmt.Fprintf(w, "%d\t%s\t%.2f%%\n", entry.ID, entry.Label(), entry.CompletionRate)
				}
			case "projects":
				entries, err := filteredEntries(cmd, opts, provider, report.KindExecutiveOverview)
				if err != nil {
					return err
				}
				for _, entry := range entries {
					fmt.Fprintf(w, "%d\t%s\t%s\t%.2f%%\n", entry.ID, entry.Name, entry.Status, entry.CompletionRate)
				}
			case "managers":
				managers, err := provider.Managers(cmd.Context())
				if err != nil {
					return err
				}
				for _, manager := range managers {
					fmt.Fprintf(w, "%d\t%s\n", manager.ID, manager.Name)
				}
			case "statuses":
				statuses, err := provider.Statuses(cmd.Context())
				if err != nil {
					return err
				}
				for _, status := range statuses {
					fmt.Fprintln(w, status)
				}
			case "roles":
				roles, err := provider.Roles(cmd.Context())
				if err != nil {
					return err
				}
				for _, role := range roles {
					fmt.Fprintf(w, "%d\t%s\t%s\n", role.ID, role.Name, report.RoleLabel(role.Name))
				}
			default:
				return fmt.Errorf("unknown catalog %q", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.search, "search", "", "substring match on the entity label")
	cmd.Flags().StringVar(&opts.status, "status", "", "only projects with this status")
	cmd.Flags().IntVar(&opts.manager, "manager", 0, "only projects led by this manager id")
	cmd.Flags().StringVar(&opts.overdue, "overdue", "", "overdue filter: tasks, milestones or any")
	return cmd
}

func filteredEntries(cmd *cobra.Command, opts *listOptions, provider report.Provider, kind report.Kind) ([]refcache.Entry, error) {
	overdue, err := report.ParseOverdueFilter(opts.overdue)
	if err != nil {
		return nil, err
	}

	cache, err := refcache.Build(cmd.Context(), provider, kind)
	if err != nil {
		return nil, err
	}

	sel := refcache.Selection{
		Search:  opts.search,
		Status:  opts.status,
		Overdue: overdue,
	}
	if cmd.Flags().Changed("manager") {
		sel.ManagerID = &opts.manager
	}
	return cache.Filter(sel), nil
}
