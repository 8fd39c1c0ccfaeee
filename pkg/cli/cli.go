package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"weekplan/pkg/commands"
	"weekplan/pkg/config"
	"weekplan/pkg/planner"
	"weekplan/pkg/ui"
	"weekplan/pkg/utils"
)

// Args represents the persistent command line flags
type Args struct {
	ConfigPath string
	Verbose    bool
	View       string
}

// NewRootCmd builds the weekplan command tree. Without a subcommand the
// interactive planner is started.
func NewRootCmd() *cobra.Command {
	args := &Args{}

	root := &cobra.Command{
		Use:           "weekplan",
		Short:         "A themed weekly planner for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			utils.InitLogger(args.Verbose)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			utils.CloseLogger()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPlanner(args)
		},
	}
	root.PersistentFlags().StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	root.PersistentFlags().BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")
	root.Flags().StringVar(&args.View, "view", "", "View to open at start (overview, monday ... sunday)")

	root.AddCommand(newShowCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newBenchCmd(args))
	root.AddCommand(newResultsCmd(args))
	return root
}

func runPlanner(args *Args) error {
	cfg, styles, err := config.Load(args.ConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if args.View != "" {
		cfg.StartView = args.View
	}

	m := ui.NewModel(planner.NewSession(), cfg, styles)
	if err := m.Err(); err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func dayCompletion(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	days := make([]string, 0, len(planner.Days))
	for _, d := range planner.Days {
		days = append(days, string(d))
	}
	return days, cobra.ShellCompDirectiveNoFileComp
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "show [day]",
		Short:             "Print the schedule of a day",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: dayCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleShowCommand(cmd.OutOrStdout(), args[0])
		},
	}
}

func newExportCmd() *cobra.Command {
	var exportType string
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the whole week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleExportCommand(cmd.OutOrStdout(), args[0], exportType)
		},
	}
	cmd.Flags().StringVar(&exportType, "type", "json", "Export file type (json, yaml, txt)")
	return cmd
}

func newBenchCmd(args *Args) *cobra.Command {
	opts := commands.BenchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure view switching, schedule generation and rendering",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, styles, err := config.Load(args.ConfigPath)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			return commands.HandleBenchCommand(cmd.OutOrStdout(), cfg, styles, opts)
		},
	}
	host, _ := os.Hostname()
	cmd.Flags().StringVar(&opts.Label, "label", host, "Label stored with the run")
	cmd.Flags().IntVar(&opts.Iterations, "iterations", 1000, "Iterations per measurement")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "Store the run in the results database")
	return cmd
}

func newResultsCmd(args *Args) *cobra.Command {
	opts := commands.ResultsOptions{}
	cmd := &cobra.Command{
		Use:   "results [run-id]",
		Short: "List, show or purge stored diagnostics runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			cfg, _, err := config.Load(args.ConfigPath)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			if len(posArgs) == 1 {
				opts.RunID = posArgs[0]
			}
			return commands.HandleResultsCommand(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, opts)
		},
	}
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "Number of runs to list (0 for all)")
	cmd.Flags().BoolVar(&opts.Purge, "purge", false, "Delete stored runs")
	cmd.Flags().StringVar(&opts.Before, "before", "", "Only purge runs created before this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.SkipAsk, "yes", false, "Skip confirmation")
	return cmd
}
