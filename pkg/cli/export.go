package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"farmlog/pkg/taskrecord"
)

var exportOutFlag string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the activity log to a spreadsheet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _ := openStore()
		tasks := taskrecord.SortByDateDesc(store.All())

		f := excelize.NewFile()
		defer f.Close()
		sheet := f.GetSheetName(0)

		header := []any{"Date", "Type", "Field", "Details", "Notes"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		for i, r := range tasks {
			var details []string
			for _, d := range r.DetailFields() {
				details = append(details, d.Label+": "+d.Value)
			}
			row := []any{r.Date, string(r.Type), r.Field, strings.Join(details, "; "), r.Notes}
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("writing row %d: %w", i+2, err)
			}
		}
		if err := f.SaveAs(exportOutFlag); err != nil {
			return fmt.Errorf("saving %s: %w", exportOutFlag, err)
		}
		fmt.Printf("Exported %d record(s) to %s\n", len(tasks), exportOutFlag)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutFlag, "out", "farmlog.xlsx", "output file path")
	rootCmd.AddCommand(exportCmd)
}
