package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"timekeep/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [category-id]",
	Short: "Start tracking time",
	Long: `Start tracking time, optionally against a category. Opens an
interactive timer by default, use --no-ui for a simple start.

Examples:
  timekeep start          # Start without a category
  timekeep start 3        # Start against category #3
  timekeep start 3 --no-ui`,
	Args: cobra.MaximumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		var categoryID *uint
		if len(args) == 1 {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				fmt.Printf("Error: invalid category ID '%s'\n", args[0])
				return
			}
			parsed := uint(id)
			categoryID = &parsed
		}

		active, err := service.Start(categoryID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("⏱️  Started tracking time: %s\n", active.CategoryName())
			fmt.Printf("Started at: %s\n", active.StartedAt.In(cfg.Location).Format("15:04:05"))
			return
		}
		if err := tui.RunTimerTUI(service, active); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop tracking time",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		session, err := service.Stop()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		duration := time.Duration(session.DurationSeconds) * time.Second
		fmt.Printf("⏹️  Stopped tracking time: %s\n", session.CategoryName())
		fmt.Printf("Session duration: %s\n", formatDuration(duration))
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current time tracking status",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		active, elapsed, err := service.Status()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if active == nil {
			fmt.Println("No active time tracking session")
			return
		}

		fmt.Printf("⏱️  Currently tracking: %s\n", active.CategoryName())
		fmt.Printf("Started at: %s\n", active.StartedAt.In(cfg.Location).Format("15:04:05"))
		fmt.Printf("Elapsed time: %s\n", formatDuration(elapsed))
	}),
}

func init() {
	// Add --no-ui flag to start command
	startCmd.Flags().Bool("no-ui", false, "Start timer without interactive UI")
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
