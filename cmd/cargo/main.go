package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"cargo/cmd"
	"cargo/internal/adapters/in/manifest"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("cargo: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "cargo",
		Short:         "Container ship loading simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file merged into the environment")

	root.AddCommand(newRunCommand(&envFile), newVersionCommand())
	return root
}

func newRunCommand(envFile *string) *cobra.Command {
	var (
		manifestPath string
		strict       bool
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a fleet manifest and print the resulting ships",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(*envFile)
			if err != nil {
				return err
			}
			if manifestPath != "" {
				config.ManifestPath = manifestPath
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, config, c.OutOrStdout(), strict)
		},
	}
	runCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "path to the YAML manifest (overrides "+cmd.EnvManifestPath+")")
	runCmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any step fails")

	return runCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintln(c.OutOrStdout(), version)
		},
	}
}

func run(ctx context.Context, config cmd.Config, out io.Writer, strict bool) error {
	logger := config.NewLogger(os.Stderr)

	m, err := manifest.Load(config.ManifestPath)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("close database", "error", err)
		}
	}()

	report, runErr := app.CreateManifestRunner().Run(ctx, m)

	printReport(out, report)

	switch {
	case errors.Is(runErr, context.Canceled):
		return runErr
	case runErr != nil && strict:
		return fmt.Errorf("%d step(s) failed: %w", report.Failed, runErr)
	}
	return nil
}

func printReport(out io.Writer, report manifest.Report) {
	fmt.Fprintf(out, "steps: %d succeeded, %d failed\n", report.Succeeded, report.Failed)

	for _, m := range report.Manifests {
		fmt.Fprintf(out, "\n%s\n", m.Summary)
		for _, entry := range m.Containers {
			fmt.Fprintf(out, "  %s\n", entry.Description)
		}
	}
}
