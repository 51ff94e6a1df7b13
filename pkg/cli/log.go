package cli

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"farmlog/pkg/taskrecord"
)

// logInput collects every flag; taskrecord.New keeps only the attributes
// of the requested kind, so one flag set serves all seven.
var logInput taskrecord.Input

var logCmd = &cobra.Command{
	Use:   "log <type>",
	Short: "Record a farm activity",
	Long: fmt.Sprintf(`Record a farm activity against a field. The type is one of:

  %s

Attributes that do not belong to the chosen type are ignored. The record
is stored locally right away; when you are logged in it is also sent to
the server (a failed send is logged and the local record stands).`,
		joinTypes()),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg := openStore()
		defer store.Flush()

		logInput.Type = args[0]
		rec, err := store.Add(logInput)
		if err != nil {
			return err
		}
		fmt.Printf("Logged %s on %s (field %s)\n", rec.Type, rec.Date, rec.Field)

		// best-effort mirror; offline or logged-out is not an error
		client, _, err := sessionClient(store, cfg)
		if err != nil {
			log.Printf("[log] not mirrored to server: %v", err)
			return nil
		}
		if _, err := client.CreateTask(rec); err != nil {
			log.Printf("[log] not mirrored to server: %v", err)
		}
		return nil
	},
}

func joinTypes() string {
	names := make([]string, len(taskrecord.Types))
	for i, t := range taskrecord.Types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func init() {
	f := logCmd.Flags()
	f.StringVar(&logInput.Date, "date", "", "calendar date YYYY-MM-DD (default: today)")
	f.StringVar(&logInput.Field, "field", "", "field or plot identifier (required)")
	f.StringVar(&logInput.Notes, "notes", "", "free-text notes")

	f.StringVar(&logInput.Equipment, "equipment", "", "maintenance: equipment worked on")
	f.StringVar(&logInput.Issue, "issue", "", "maintenance: issue found")
	f.StringVar(&logInput.Parts, "parts", "", "maintenance: parts used")
	f.StringVar(&logInput.TimeSpent, "time-spent", "", "maintenance: time spent")
	f.StringVar(&logInput.FertilizerName, "fertilizer", "", "fertigation: fertilizer name")
	f.StringVar(&logInput.Quantity, "quantity", "", "quantity applied")
	f.StringVar(&logInput.Duration, "duration", "", "duration of the activity")
	f.StringVar(&logInput.Crop, "crop", "", "crop treated")
	f.StringVar(&logInput.Method, "method", "", "irrigation method or application method")
	f.StringVar(&logInput.Area, "area", "", "area covered")
	f.StringVar(&logInput.WaterSource, "water-source", "", "irrigation: water source")
	f.StringVar(&logInput.Chemical, "chemical", "", "pesticide: chemical name")
	f.StringVar(&logInput.ChemicalType, "chemical-type", "", "pesticide: Insecticide, Pesticide or Fungicide")
	f.StringVar(&logInput.PlantName, "plant", "", "plantation: plant name")
	f.StringVar(&logInput.Variety, "variety", "", "plantation: variety")
	f.StringVar(&logInput.Number, "number", "", "plantation: number planted")
	f.StringVar(&logInput.HerbicideName, "herbicide", "", "herbicide: product name")

	_ = logCmd.MarkFlagRequired("field")
	rootCmd.AddCommand(logCmd)
}
