package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"timekeep/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tracking reports",
	Long:  "Show time reports: today by hour, this week by weekday, or this month as a heatmap",
}

var statsDayCmd = &cobra.Command{
	Use:   "day",
	Short: "Today's tracked time by hour",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		sessions, err := service.ListSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}
		report := stats.Report(sessions, time.Now(), cfg.Location)

		fmt.Println("Today by hour")
		empty := true
		for _, bucket := range report.Hourly {
			line := renderBucketLine(report.Categories, report.Colors, bucket.Hours)
			if line == "" {
				continue
			}
			empty = false
			fmt.Printf("%02d:00  %s\n", bucket.Hour, line)
		}
		if empty {
			fmt.Println("Nothing tracked today.")
		}

		local := time.Now().In(cfg.Location)
		totals := stats.CategoryTotals(sessions, cfg.Location, func(start time.Time) bool {
			return start.Year() == local.Year() && start.Month() == local.Month() && start.Day() == local.Day()
		})
		renderTotals(report.Colors, totals)
	}),
}

var statsWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "This week's tracked time by weekday",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		sessions, err := service.ListSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}
		report := stats.Report(sessions, time.Now(), cfg.Location)

		fmt.Println("This week")
		for _, bucket := range report.Weekly {
			line := renderBucketLine(report.Categories, report.Colors, bucket.Hours)
			if line == "" {
				line = "-"
			}
			fmt.Printf("%-4s %s\n", bucket.Day.String()[:3], line)
		}

		local := time.Now().In(cfg.Location)
		weekStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, cfg.Location).
			AddDate(0, 0, -int(local.Weekday()))
		totals := stats.CategoryTotals(sessions, cfg.Location, func(start time.Time) bool {
			return !start.Before(weekStart)
		})
		renderTotals(report.Colors, totals)
	}),
}

var statsMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "This month's tracked time as a heatmap",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		sessions, err := service.ListSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}
		report := stats.Report(sessions, time.Now(), cfg.Location)

		fmt.Println(time.Now().In(cfg.Location).Format("January 2006"))
		fmt.Println(" Su  Mo  Tu  We  Th  Fr  Sa")
		var row strings.Builder
		for i, cell := range report.Month {
			if cell.Day == 0 {
				row.WriteString("    ")
			} else {
				row.WriteString(renderHeatCell(cell))
			}
			if (i+1)%7 == 0 {
				fmt.Println(row.String())
				row.Reset()
			}
		}
		if row.Len() > 0 {
			fmt.Println(row.String())
		}
		fmt.Printf("\nCoins: %d\n", report.Coins)
	}),
}

var coinsCmd = &cobra.Command{
	Use:   "coins",
	Short: "Show earned reward coins",
	Long:  "Show reward coins: one coin per full hour of tracked time across all history",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		sessions, err := service.ListSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}
		total := stats.TotalSeconds(sessions)
		fmt.Printf("🪙 Coins: %d\n", stats.Coins(sessions))
		fmt.Printf("Total tracked: %s\n", formatDuration(time.Duration(total)*time.Second))
	}),
}

// heatRamp approximates the heatmap's green intensity scale
var heatRamp = []string{"#9be9a8", "#40c463", "#30a14e", "#216e39"}

func renderHeatCell(cell stats.MonthCell) string {
	label := fmt.Sprintf(" %2d ", cell.Day)
	if cell.Intensity == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(label)
	}
	shade := int(cell.Intensity * float64(len(heatRamp)))
	if shade >= len(heatRamp) {
		shade = len(heatRamp) - 1
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(heatRamp[shade])).
		Foreground(lipgloss.Color("#1B1530")).
		Render(label)
}

// renderBucketLine renders one bucket's per-category hours, categories in
// first-seen order, zero entries skipped
func renderBucketLine(categories []string, colors map[string]string, hours map[string]float64) string {
	var parts []string
	for _, name := range categories {
		value := hours[name]
		if value == 0 {
			continue
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[name])).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s %.2fh", swatch, name, value))
	}
	return strings.Join(parts, "  ")
}

func renderTotals(colors map[string]string, totals []stats.CategoryTotal) {
	if len(totals) == 0 {
		return
	}
	fmt.Println()
	for _, total := range totals {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[total.Name])).Render("■")
		fmt.Printf("%s %-20s %.0fm\n", swatch, total.Name, total.Minutes)
	}
}

func init() {
	statsCmd.AddCommand(statsDayCmd)
	statsCmd.AddCommand(statsWeekCmd)
	statsCmd.AddCommand(statsMonthCmd)
}
