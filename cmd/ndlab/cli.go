package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndlab/internal/envconfig"
	"github.com/born-ml/ndlab/internal/lab"
	"github.com/born-ml/ndlab/internal/logutil"
	"github.com/born-ml/ndlab/internal/report"
)

const version = "v0.1.0-dev"

// NewCLI builds the ndlab command tree. Flag defaults come from the
// NDLAB_* environment.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ndlab",
		Short: "Strided array semantics lab",
		Long:  "Demonstrations of shape, reshape, view-versus-copy, axis reductions, broadcasting and a Monte Carlo coin experiment.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true

			verbose, _ := cmd.Flags().GetBool("verbose")
			trace, _ := cmd.Flags().GetBool("trace")
			level := logutil.Level(envconfig.Debug || verbose, trace)
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), level))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Log each demonstration step")
	flags.Bool("trace", false, "Log at trace level")
	flags.Uint64("seed", envconfig.Seed, "Seed for the coin-flip simulation")
	flags.Int("trials", envconfig.Trials, "Number of simulated trials")
	flags.Int("flips", envconfig.Flips, "Coin flips per trial")
	flags.Int("bins", envconfig.Bins, "Histogram bins")
	flags.String("chart-dir", envconfig.ChartDir, "Write PNG charts to this directory")
	_ = flags.MarkHidden("trace")

	cobra.EnableCommandSorting = false

	for _, d := range lab.Demos() {
		rootCmd.AddCommand(&cobra.Command{
			Use:   d.Name,
			Short: "Run the " + d.Title + " demonstration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDemos(cmd, d.Name)
			},
		})
	}

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Run every demonstration in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemos(cmd)
		},
	}

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show environment configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			vars := envconfig.AsMap()
			keys := make([]string, 0, len(vars))
			for k := range vars {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			rows := make([][]string, 0, len(keys))
			for _, k := range keys {
				v := vars[k]
				rows = append(rows, []string{v.Name, fmt.Sprintf("%v", v.Value), v.Description})
			}
			report.NewConsole(cmd.OutOrStdout()).Table([]string{"NAME", "VALUE", "DESCRIPTION"}, rows)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ndlab %s\n", version)
		},
	}

	rootCmd.AddCommand(allCmd, envCmd, versionCmd)
	return rootCmd
}

func runDemos(cmd *cobra.Command, names ...string) error {
	cfg, chartDir, err := labConfig(cmd)
	if err != nil {
		return err
	}

	console := report.NewConsole(cmd.OutOrStdout())
	var plotter report.Plotter
	if chartDir != "" {
		plotter = report.NewCharts(chartDir)
	}

	l := lab.New(console, plotter, cfg)
	if err := l.Run(names...); err != nil {
		return err
	}
	slog.Debug("demonstrations finished", "failed_steps", l.Failed())
	return nil
}

func labConfig(cmd *cobra.Command) (lab.Config, string, error) {
	flags := cmd.Flags()
	seed, err := flags.GetUint64("seed")
	if err != nil {
		return lab.Config{}, "", err
	}
	trials, err := flags.GetInt("trials")
	if err != nil {
		return lab.Config{}, "", err
	}
	flips, err := flags.GetInt("flips")
	if err != nil {
		return lab.Config{}, "", err
	}
	bins, err := flags.GetInt("bins")
	if err != nil {
		return lab.Config{}, "", err
	}
	chartDir, err := flags.GetString("chart-dir")
	if err != nil {
		return lab.Config{}, "", err
	}
	if bins <= 0 {
		return lab.Config{}, "", fmt.Errorf("--bins must be positive, got %d", bins)
	}
	return lab.Config{Seed: seed, Trials: trials, Flips: flips, Bins: bins}, chartDir, nil
}
