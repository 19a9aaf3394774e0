package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"nellis/internal"
	"nellis/internal/di"
	"nellis/internal/structures"
)

var flags structures.CliFlags

var rootCmd = &cobra.Command{
	Use:   "nellis",
	Short: "Admin dashboard for the Nellis automotive site",
	Long: `Admin dashboard for the Nellis automotive site.

Without a subcommand an interactive console is started. Type help inside the
console for the list of commands.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *internal.App) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list <page> [query]",
	Short: "Print the records of a page",
	Long: `Print the records of a page, optionally filtered by a search query.

Examples:
  nellis list inventory
  nellis list bookings pending
  nellis --json list offers`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return execCommand(cmd, append([]string{"list"}, args...))
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <page> [field]",
	Short: "Count records per field value",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return execCommand(cmd, append([]string{"stats"}, args...))
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the dashboard stat cards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return execCommand(cmd, []string{"dashboard"})
	},
}

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Manage seed fixtures",
}

var fixturesPackCmd = &cobra.Command{
	Use:   "pack <src.json> <dst.json.zst>",
	Short: "Compress a JSON fixture file for fixtures.path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *internal.App) error {
			if err := app.Pack(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "packed %s into %s\n", args[0], args[1])
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "log to stderr as well")
	rootCmd.PersistentFlags().BoolVar(&flags.JSON, "json", false, "print JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "disable colored output")

	fixturesCmd.AddCommand(fixturesPackCmd)
	rootCmd.AddCommand(listCmd, statsCmd, dashboardCmd, fixturesCmd)
}

func withApp(fn func(app *internal.App) error) error {
	app, err := di.InitApp(&flags)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}

func execCommand(cmd *cobra.Command, args []string) error {
	return withApp(func(app *internal.App) error {
		return app.Exec(cmd.OutOrStdout(), args...)
	})
}
