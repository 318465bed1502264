package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newWatchCmd creates the "watch" subcommand for re-planning on config changes.
func newWatchCmd() *cobra.Command {
	var (
		configPath   string
		debounce     time.Duration
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-plan on configuration changes",
		Long: `Watch monitors the configuration file and re-plans on each change.

The watch command:
- Monitors the config file's directory (bootstrap scripts included)
- Re-runs planning on each change
- Debounces rapid changes to avoid excessive re-planning

Examples:
    vpcplan-aws watch -c vpcplan.yaml
    vpcplan-aws watch -c vpcplan.yaml -o plan.json
    vpcplan-aws watch -c vpcplan.yaml --debounce 1s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(watchOptions{
				configPath:   configPath,
				debounce:     debounce,
				outputFormat: outputFormat,
				outputFile:   outputFile,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "vpcplan.yaml", "Planner configuration file")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

type watchOptions struct {
	configPath   string
	debounce     time.Duration
	outputFormat string
	outputFile   string
}

// runWatch monitors the config file and re-plans on changes.
func runWatch(opts watchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	dir, err := filepath.Abs(filepath.Dir(opts.configPath))
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logrus.WithField("dir", dir).Info("watching for changes")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Initial plan
	replan(opts)

	var debounceTimer *time.Timer
	replanChan := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Debounce: reset timer on each change
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(opts.debounce, func() {
				select {
				case replanChan <- struct{}{}:
				default:
				}
			})

		case <-replanChan:
			logrus.Info("change detected, re-planning")
			replan(opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).Warn("watch error")

		case <-sigChan:
			fmt.Println("\nStopping watch...")
			return nil
		}
	}
}

// replan runs one planning pass; failures are logged, not fatal, so the
// loop survives transient config errors mid-edit.
func replan(opts watchOptions) {
	if err := runPlan(opts.configPath, opts.outputFormat, opts.outputFile); err != nil {
		logrus.WithError(err).Error("planning failed")
		return
	}
	logrus.Info("plan updated")
}
