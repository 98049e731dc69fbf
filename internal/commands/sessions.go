package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timekeep/internal/tracker"
)

const startTimeLayout = "2006-01-02 15:04"

var sessionsCmd = &cobra.Command{
	Use:     "sessions",
	Aliases: []string{"ls"},
	Short:   "List completed sessions",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		sessions, err := service.ListSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions yet. Use 'timekeep start' to begin tracking.")
			return
		}

		fmt.Printf("%-4s %-17s %-17s %-10s %s\n", "ID", "START", "END", "DURATION", "CATEGORY")
		fmt.Println(strings.Repeat("-", 70))
		for _, session := range sessions {
			duration := time.Duration(session.DurationSeconds) * time.Second
			fmt.Printf("%-4d %-17s %-17s %-10s %s\n",
				session.ID,
				session.StartedAt.In(cfg.Location).Format(startTimeLayout),
				session.EndedAt.In(cfg.Location).Format(startTimeLayout),
				formatDuration(duration),
				session.CategoryName())
		}
	}),
}

var sessionsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a completed session",
	Long: `Edit a completed session's duration, category, or start time.
The end time is always re-derived as start + duration.

Examples:
  timekeep sessions edit 7 --minutes 90
  timekeep sessions edit 7 --category 3
  timekeep sessions edit 7 --no-category
  timekeep sessions edit 7 --start "2026-09-01 09:00"`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		var req tracker.EditSessionRequest

		if cmd.Flags().Changed("minutes") {
			minutes, _ := cmd.Flags().GetFloat64("minutes")
			req.DurationMinutes = &minutes
		}
		if cmd.Flags().Changed("start") {
			raw, _ := cmd.Flags().GetString("start")
			start, err := time.ParseInLocation(startTimeLayout, raw, cfg.Location)
			if err != nil {
				fmt.Printf("Error: invalid start time '%s', expected \"%s\"\n", raw, startTimeLayout)
				return
			}
			req.StartedAt = &start
		}
		noCategory, _ := cmd.Flags().GetBool("no-category")
		if noCategory {
			req.Category = tracker.OptionalCategory{Set: true}
		} else if cmd.Flags().Changed("category") {
			categoryID, _ := cmd.Flags().GetUint("category")
			req.Category = tracker.OptionalCategory{Set: true, ID: &categoryID}
		}

		session, err := service.EditSession(id, req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		duration := time.Duration(session.DurationSeconds) * time.Second
		fmt.Printf("✅ Updated session #%d: %s, %s → %s (%s)\n",
			session.ID,
			session.CategoryName(),
			session.StartedAt.In(cfg.Location).Format(startTimeLayout),
			session.EndedAt.In(cfg.Location).Format(startTimeLayout),
			formatDuration(duration))
	}),
}

var sessionsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a completed session",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}
		if err := service.DeleteSession(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted session #%d\n", id)
	}),
}

func init() {
	sessionsEditCmd.Flags().Float64("minutes", 0, "New duration in minutes")
	sessionsEditCmd.Flags().Uint("category", 0, "New category ID")
	sessionsEditCmd.Flags().Bool("no-category", false, "Clear the session's category")
	sessionsEditCmd.Flags().String("start", "", "New start time (\"2006-01-02 15:04\", reporting timezone)")

	sessionsCmd.AddCommand(sessionsEditCmd)
	sessionsCmd.AddCommand(sessionsRmCmd)
}
