package controllerImp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"farmlog/entities"
	"farmlog/pkg/taskrecord"
)

var errTypeImmutable = errors.New("task type cannot be changed")

// columnByJSON maps wire attribute names to their table columns.
var columnByJSON = map[string]string{
	"date":           "date",
	"field":          "field",
	"notes":          "notes",
	"equipment":      "equipment",
	"issue":          "issue",
	"parts":          "parts",
	"timeSpent":      "time_spent",
	"fertilizerName": "fertilizer_name",
	"quantity":       "quantity",
	"duration":       "duration",
	"crop":           "crop",
	"method":         "method",
	"area":           "area",
	"waterSource":    "water_source",
	"chemical":       "chemical",
	"chemicalType":   "chemical_type",
	"plantName":      "plant_name",
	"variety":        "variety",
	"number":         "number",
	"herbicideName":  "herbicide_name",
}

// buildPatch turns a partial edit body into column updates for the stored
// row. The row's type, id and owner are immutable; attribute keys outside
// the row's own kind are dropped silently, the same leniency create has.
func buildPatch(stored *entities.Task, body map[string]any) (map[string]any, error) {
	if v, ok := body["type"]; ok {
		s, _ := v.(string)
		if s != stored.Type {
			return nil, errTypeImmutable
		}
	}

	allowed := map[string]bool{"date": true, "field": true, "notes": true}
	for _, k := range taskrecord.VariantKeys(taskrecord.Type(stored.Type)) {
		allowed[k] = true
	}

	cols := make(map[string]any)
	for k, v := range body {
		if k == "type" || k == "id" || k == "owner" || !allowed[k] {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("invalid value for %q", k)
		}
		s = strings.TrimSpace(s)
		switch k {
		case "date":
			if _, err := time.Parse(taskrecord.DateLayout, s); err != nil {
				return nil, fmt.Errorf("%w: %q", taskrecord.ErrInvalidDate, s)
			}
		case "field":
			if s == "" {
				return nil, taskrecord.ErrMissingField
			}
		case "method":
			if stored.Type == string(taskrecord.TypeIrrigation) {
				if err := taskrecord.CheckChoice(s, taskrecord.IrrigationMethods); err != nil {
					return nil, fmt.Errorf("method: %w", err)
				}
			}
		case "chemicalType":
			if err := taskrecord.CheckChoice(s, taskrecord.ChemicalTypes); err != nil {
				return nil, fmt.Errorf("chemicalType: %w", err)
			}
		}
		cols[columnByJSON[k]] = s
	}
	return cols, nil
}

// taskFromRecord maps a validated record onto a fresh row for uid.
func taskFromRecord(uid uint, rec taskrecord.Record) *entities.Task {
	t := &entities.Task{
		UserID: uid,
		Type:   string(rec.Type),
		Date:   rec.Date,
		Field:  rec.Field,
		Notes:  rec.Notes,
	}
	switch d := rec.Details.(type) {
	case taskrecord.MaintenanceDetails:
		t.Equipment, t.Issue, t.Parts, t.TimeSpent = d.Equipment, d.Issue, d.Parts, d.TimeSpent
	case taskrecord.FertigationDetails:
		t.FertilizerName, t.Quantity, t.Duration, t.Crop = d.FertilizerName, d.Quantity, d.Duration, d.Crop
	case taskrecord.IrrigationDetails:
		t.Method, t.Duration, t.Area, t.WaterSource = d.Method, d.Duration, d.Area, d.WaterSource
	case taskrecord.PesticideDetails:
		t.Chemical, t.ChemicalType, t.Quantity, t.Method, t.Crop = d.Chemical, d.ChemicalType, d.Quantity, d.Method, d.Crop
	case taskrecord.HerbicideDetails:
		t.HerbicideName, t.Quantity, t.Area = d.HerbicideName, d.Quantity, d.Area
	case taskrecord.PlantationDetails:
		t.PlantName, t.Variety, t.Number, t.Area = d.PlantName, d.Variety, d.Number, d.Area
	}
	return t
}
