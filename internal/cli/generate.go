package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pmreport/internal/domain/report"
	"pmreport/internal/platform/config"
	"pmreport/internal/render/pdf"
)

type generateOptions struct {
	kind     string
	ids      []int
	status   string
	manager  int
	overdue  string
	minRate  float64
	maxRate  float64
	fileName string
	dir      string
}

func newGenerateCommand(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a report PDF for the given entities",
		Example: `  pmreport generate --sqlite data.db --kind employee_performance --ids 1,2,3
  pmreport generate --sqlite data.db --kind executive_overview --ids 4 --overdue any --status "In Progress"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := report.ParseKind(opts.kind)
			if err != nil {
				return err
			}
			overdue, err := report.ParseOverdueFilter(opts.overdue)
			if err != nil {
				return err
			}

			criteria := report.Criteria{Status: opts.status, Overdue: overdue}
			if cmd.Flags().Changed("manager") {
				criteria.ManagerID = &opts.manager
			}
			if cmd.Flags().Changed("min-rate") {
				criteria.MinRate = &opts.minRate
			}
			if cmd.Flags().Changed("max-rate") {
				criteria.MaxRate = &opts.maxRate
			}

			provider, release, err := root.openProvider(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			cfg := config.Load()
			renderer := pdf.New(pdf.Config{
				Orientation: cfg.PDFOrientation,
				PageSize:    cfg.PDFPageSize,
				FontFamily:  cfg.PDFFontFamily,
			})
			service := report.NewService(provider, renderer, root.resolveOutputDir())

			path, err := service.Generate(cmd.Context(), report.Request{
				Kind:      kind,
				EntityIDs: opts.ids,
				Criteria:  criteria,
				FileName:  opts.fileName,
				Directory: opts.dir,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "", "report kind: employee_performance, project_progress or executive_overview")
	cmd.Flags().IntSliceVar(&opts.ids, "ids", nil, "entity ids to include, in report order")
	cmd.Flags().StringVar(&opts.status, "status", "", "only include entities with this project status")
	cmd.Flags().IntVar(&opts.manager, "manager", 0, "only include projects led by this manager id")
	cmd.Flags().StringVar(&opts.overdue, "overdue", "", "overdue filter: tasks, milestones or any")
	cmd.Flags().Float64Var(&opts.minRate, "min-rate", 0, "minimum completion rate in percent")
	cmd.Flags().Float64Var(&opts.maxRate, "max-rate", 0, "maximum completion rate in percent")
	cmd.Flags().StringVar(&opts.fileName, "name", "", "custom file name without extension")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "target directory for this report")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("ids")

	return cmd
}
