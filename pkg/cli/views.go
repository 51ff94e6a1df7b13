package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"farmlog/pkg/taskrecord"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show activities logged for today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _ := openStore()
		tasks := store.TodaysTasks()
		if len(tasks) == 0 {
			fmt.Println("No activities logged today.")
			return nil
		}
		for _, r := range tasks {
			printRecord(r)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the full activity log, newest day first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _ := openStore()
		groups, dates := taskrecord.GroupByDate(store.All())
		if len(dates) == 0 {
			fmt.Println("No activities logged yet.")
			return nil
		}
		for _, d := range dates {
			fmt.Println(d)
			for _, r := range groups[d] {
				printRecord(r)
			}
		}
		return nil
	},
}

var listTypeFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List activities, optionally filtered by type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _ := openStore()
		tasks := taskrecord.SortByDateDesc(store.ByType(taskrecord.Type(listTypeFlag)))
		if len(tasks) == 0 {
			fmt.Println("No matching activities.")
			return nil
		}
		for _, r := range tasks {
			printRecord(r)
		}
		return nil
	},
}

func printRecord(r taskrecord.Record) {
	fmt.Printf("  %s  [%s]  field %s", r.Date, r.Type, r.Field)
	for _, d := range r.DetailFields() {
		fmt.Printf("  %s: %s", d.Label, d.Value)
	}
	if r.Notes != "" {
		fmt.Printf("  — %s", r.Notes)
	}
	fmt.Println()
}

func init() {
	listCmd.Flags().StringVar(&listTypeFlag, "type", "", "activity type filter (empty shows all)")
	rootCmd.AddCommand(todayCmd, historyCmd, listCmd)
}
