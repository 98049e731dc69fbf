package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"timekeep/internal/tracker"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage categories",
	Long:    "Create, rename, delete, and list the categories sessions are tagged with",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new category",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		if strings.TrimSpace(args[0]) == "" {
			// Ignore trivial input, same policy as the rest of the CLI
			return
		}
		category, err := service.CreateCategory(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Created category \"%s\" - ID: %d\n", category.Name, category.ID)
	}),
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid category ID '%s'\n", args[0])
			return
		}
		category, err := service.RenameCategory(id, args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Renamed category #%d to \"%s\"\n", category.ID, category.Name)
	}),
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a category",
	Long:  "Delete a category. Fails while any session still references it.",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid category ID '%s'\n", args[0])
			return
		}
		if err := service.DeleteCategory(id); err != nil {
			if tracker.IsConflict(err) {
				fmt.Printf("Error: %v. Delete or reassign its sessions first.\n", err)
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted category #%d\n", id)
	}),
}

var categoryLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List categories",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		categories, err := service.ListCategories()
		if err != nil {
			fmt.Printf("Error fetching categories: %v\n", err)
			return
		}

		if len(categories) == 0 {
			fmt.Println("No categories found. Use 'timekeep category add \"name\"' to create one.")
			return
		}

		fmt.Printf("%-4s %s\n", "ID", "NAME")
		fmt.Println(strings.Repeat("-", 30))
		for _, category := range categories {
			fmt.Printf("%-4d %s\n", category.ID, category.Name)
		}
	}),
}

// parseID parses a numeric entity ID argument
func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryRmCmd)
	categoryCmd.AddCommand(categoryLsCmd)
}
