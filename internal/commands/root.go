package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"timekeep/internal/config"
	"timekeep/internal/db"
	"timekeep/internal/tracker"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "timekeep",
	Short: "A CLI time tracker with categories and rewards",
	Long: `timekeep tracks elapsed time against named categories.
Start and stop a timer, keep a history of sessions, and view per-hour,
per-weekday, and per-month reports derived from it.`,
}

var (
	cfg     config.Config
	store   *db.Store
	service *tracker.Service
)

// initStore loads the config, opens the database, and wires the tracker
func initStore() {
	var err error
	cfg, err = config.Load(config.DefaultConfigPath())
	if err != nil {
		panic(err)
	}
	store, err = db.Open(cfg.DBPath)
	if err != nil {
		panic(err) // For now, panic on DB init failure
	}
	service = tracker.New(store)
}

// withStore wraps a command function to initialize the store first
func withStore(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initStore()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("timekeep %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(coinsCmd)
	rootCmd.AddCommand(versionCmd)
}
