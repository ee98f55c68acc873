// Command busopt runs the school-bus fleet scheduling pipeline over a
// day's routes and a vehicle registry, both supplied as JSON files, and
// prints the resulting metrics. It is a thin collaborator surface
// standing in for the REST/WebSocket layer excluded from this module.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/odinx-svg/bus-route-optimizer-sub000/config"
	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/pipeline"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
	"github.com/odinx-svg/bus-route-optimizer-sub000/travel"
)

// version is set at release time via -ldflags; "dev" otherwise.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "busopt",
		Short: "School-bus fleet scheduling optimizer",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the busopt version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var (
		routesPath   string
		vehiclesPath string
		configPath   string
		osrmURL      string
		timeoutSec   int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline over a routes file and a vehicle registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, routesPath, vehiclesPath, configPath, osrmURL, timeoutSec)
		},
	}

	cmd.Flags().StringVar(&routesPath, "routes", "", "path to a JSON file of routes (required)")
	cmd.Flags().StringVar(&vehiclesPath, "vehicles", "", "path to a JSON file of the vehicle registry (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "optional path to a YAML pipeline config file")
	cmd.Flags().StringVar(&osrmURL, "osrm-url", "", "base URL of an OSRM-shaped routing service; falls back to haversine estimates when unset")
	cmd.Flags().IntVar(&timeoutSec, "timeout", 300, "overall run timeout in seconds")
	_ = cmd.MarkFlagRequired("routes")
	_ = cmd.MarkFlagRequired("vehicles")

	return cmd
}

func runPipeline(cmd *cobra.Command, routesPath, vehiclesPath, configPath, osrmURL string, timeoutSec int) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("busopt: loading config: %w", err)
	}
	if cmd.Flags().Changed("timeout") {
		cfg.MaxDurationSec = timeoutSec
	}

	logrus.Infof("🚀 loading routes from %q and vehicle registry from %q", routesPath, vehiclesPath)

	routes, err := loadRoutes(routesPath)
	if err != nil {
		logrus.Errorf("❌ %v", err)
		return err
	}
	vehicles, err := loadVehicles(vehiclesPath)
	if err != nil {
		logrus.Errorf("❌ %v", err)
		return err
	}

	var provider travel.Provider
	if osrmURL != "" {
		provider = travel.NewOSRMProvider(osrmURL)
	} else {
		logrus.Warnf("⚠️  no --osrm-url given, travel times will use haversine estimates only")
		provider = travel.ProviderFunc(func(ctx context.Context, from, to geo.Point) (float64, error) {
			return 0, travel.ErrProviderUnavailable
		})
	}

	oracle, err := travel.NewOracle(provider, travel.Options{})
	if err != nil {
		logrus.Errorf("❌ %v", err)
		return err
	}
	defer oracle.Close()

	logrus.Infof("⏳ running pipeline (objective=%s, max_iterations=%d)", cfg.Objective, cfg.MaxIterations)

	result, err := pipeline.Run(ctx, cfg, routes, vehicles, oracle, func(entry schedule.HistoryEntry) {
		logrus.Debugf("[%3d%%] %s: %s", entry.Progress, entry.Phase, entry.Message)
	})
	if err != nil {
		logrus.Errorf("💀 pipeline failed: %v", err)
		return err
	}

	printSummary(cmd, result)
	logrus.Infof("🎉 done")

	return nil
}

func printSummary(cmd *cobra.Command, result schedule.PipelineResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "selected objective: %s\n", result.SelectedCandidateLabel)
	fmt.Fprintf(out, "buses used:         %d (lower bound %d)\n", result.Metrics.BestBuses, result.Metrics.LowerBoundBuses)
	fmt.Fprintf(out, "optimality gap:     %.2f%%\n", result.Metrics.OptimalityGap*100)
	fmt.Fprintf(out, "split chains:       %d\n", result.Metrics.SplitCount)
	fmt.Fprintf(out, "infeasible buses:   %d\n", result.Metrics.InfeasibleBuses)
	fmt.Fprintf(out, "avg deadhead (min): %.1f\n", result.Metrics.AvgDeadhead)
	fmt.Fprintf(out, "avg efficiency:     %.2f%%\n", result.Metrics.AvgEfficiency*100)
	fmt.Fprintf(out, "validation issues:  %d errors, %d warnings\n", result.Metrics.ErrorIssues, result.Metrics.WarningIssues)
	fmt.Fprintf(out, "fleet assigned:     %d (%d virtual)\n", result.Metrics.FleetAssigned, result.Metrics.FleetVirtualBuses)

	for day := schedule.Monday; day <= schedule.Friday; day++ {
		buses := result.ScheduleByDay[day]
		fmt.Fprintf(out, "  %s: %d buses\n", day, len(buses))
	}
}
