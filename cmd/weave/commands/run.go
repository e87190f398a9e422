package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var (
		reportPath  string
		parallelism int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Instrument the build unit's compiled classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			return c.app.Run(cmd.Context(), configPath, app.RunOptions{
				ReportPath:  reportPath,
				Parallelism: parallelism,
			})
		},
	}
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a per-type outcome report to this path")
	cmd.Flags().IntVar(&parallelism, "parallelism", 0, "Number of concurrent type workers (0 = NumCPU)")
	return cmd
}
