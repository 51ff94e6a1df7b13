package taskrecord

import (
	"encoding/json"
	"fmt"
)

// Type tags a record with its activity kind.
type Type string

const (
	TypePlantMaintenance Type = "plant-maintenance"
	TypeToolMaintenance  Type = "tool-maintenance"
	TypeFertigation      Type = "fertigation"
	TypeIrrigation       Type = "irrigation"
	TypePesticide        Type = "pesticide"
	TypeHerbicide        Type = "herbicide"
	TypePlantation       Type = "plantation"
)

// Types lists every activity kind.
var Types = []Type{
	TypePlantMaintenance,
	TypeToolMaintenance,
	TypeFertigation,
	TypeIrrigation,
	TypePesticide,
	TypeHerbicide,
	TypePlantation,
}

func (t Type) Valid() bool {
	switch t {
	case TypePlantMaintenance, TypeToolMaintenance, TypeFertigation,
		TypeIrrigation, TypePesticide, TypeHerbicide, TypePlantation:
		return true
	}
	return false
}

// Record is one logged farm activity. Common fields live on the struct;
// the per-kind attributes live in Details, one concrete case per kind.
type Record struct {
	ID      string
	Owner   string
	Type    Type
	Date    string // YYYY-MM-DD, compared as a raw string everywhere
	Field   string
	Notes   string
	Details Details
}

// Details is the variant payload. Maintenance covers both plant-maintenance
// and tool-maintenance; the other kinds each have their own case.
type Details interface{ isDetails() }

type MaintenanceDetails struct {
	Equipment string
	Issue     string
	Parts     string
	TimeSpent string
}

type FertigationDetails struct {
	FertilizerName string
	Quantity       string
	Duration       string
	Crop           string
}

type IrrigationDetails struct {
	Method      string // Drip|Sprinkler|Flood|Furrow|Centre Pivot|Manual or empty
	Duration    string
	Area        string
	WaterSource string
}

type PesticideDetails struct {
	Chemical     string
	ChemicalType string // Insecticide|Pesticide|Fungicide or empty
	Quantity     string
	Method       string
	Crop         string
}

type HerbicideDetails struct {
	HerbicideName string
	Quantity      string
	Area          string
}

type PlantationDetails struct {
	PlantName string
	Variety   string
	Number    string
	Area      string
}

func (MaintenanceDetails) isDetails() {}
func (FertigationDetails) isDetails() {}
func (IrrigationDetails) isDetails()  {}
func (PesticideDetails) isDetails()   {}
func (HerbicideDetails) isDetails()   {}
func (PlantationDetails) isDetails()  {}

// VariantKeys returns the JSON attribute names belonging to a kind.
// Keys outside this set are never stored for a record of that kind.
func VariantKeys(t Type) []string {
	switch t {
	case TypePlantMaintenance, TypeToolMaintenance:
		return []string{"equipment", "issue", "parts", "timeSpent"}
	case TypeFertigation:
		return []string{"fertilizerName", "quantity", "duration", "crop"}
	case TypeIrrigation:
		return []string{"method", "duration", "area", "waterSource"}
	case TypePesticide:
		return []string{"chemical", "chemicalType", "quantity", "method", "crop"}
	case TypeHerbicide:
		return []string{"herbicideName", "quantity", "area"}
	case TypePlantation:
		return []string{"plantName", "variety", "number", "area"}
	}
	return nil
}

// DetailField is one labelled variant attribute, for rendering and export.
type DetailField struct {
	Label string
	Value string
}

// DetailFields flattens the variant payload into labelled pairs, in the
// kind's declared attribute order. Blank attributes are skipped.
func (r Record) DetailFields() []DetailField {
	var out []DetailField
	push := func(label, value string) {
		if value != "" {
			out = append(out, DetailField{Label: label, Value: value})
		}
	}
	switch d := r.Details.(type) {
	case MaintenanceDetails:
		push("Equipment", d.Equipment)
		push("Issue", d.Issue)
		push("Parts", d.Parts)
		push("Time spent", d.TimeSpent)
	case FertigationDetails:
		push("Fertilizer", d.FertilizerName)
		push("Quantity", d.Quantity)
		push("Duration", d.Duration)
		push("Crop", d.Crop)
	case IrrigationDetails:
		push("Method", d.Method)
		push("Duration", d.Duration)
		push("Area", d.Area)
		push("Water source", d.WaterSource)
	case PesticideDetails:
		push("Chemical", d.Chemical)
		push("Chemical type", d.ChemicalType)
		push("Quantity", d.Quantity)
		push("Method", d.Method)
		push("Crop", d.Crop)
	case HerbicideDetails:
		push("Herbicide", d.HerbicideName)
		push("Quantity", d.Quantity)
		push("Area", d.Area)
	case PlantationDetails:
		push("Plant", d.PlantName)
		push("Variety", d.Variety)
		push("Number", d.Number)
		push("Area", d.Area)
	}
	return out
}

// wire is the flat JSON shape shared with the server and the snapshot file.
// Only the keys of the record's own kind are ever populated.
type wire struct {
	ID    looseString `json:"id,omitempty"`
	Owner looseString `json:"owner,omitempty"`
	Type  Type        `json:"type"`
	Date  string      `json:"date"`
	Field string      `json:"field"`
	Notes string      `json:"notes"`

	Equipment      string `json:"equipment,omitempty"`
	Issue          string `json:"issue,omitempty"`
	Parts          string `json:"parts,omitempty"`
	TimeSpent      string `json:"timeSpent,omitempty"`
	FertilizerName string `json:"fertilizerName,omitempty"`
	Quantity       string `json:"quantity,omitempty"`
	Duration       string `json:"duration,omitempty"`
	Crop           string `json:"crop,omitempty"`
	Method         string `json:"method,omitempty"`
	Area           string `json:"area,omitempty"`
	WaterSource    string `json:"waterSource,omitempty"`
	Chemical       string `json:"chemical,omitempty"`
	ChemicalType   string `json:"chemicalType,omitempty"`
	PlantName      string `json:"plantName,omitempty"`
	Variety        string `json:"variety,omitempty"`
	Number         string `json:"number,omitempty"`
	HerbicideName  string `json:"herbicideName,omitempty"`
}

// looseString accepts either a JSON string or a bare number. Local ids are
// uuids, server-assigned ids arrive as integers; both land as strings here.
type looseString string

func (s looseString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *looseString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	*s = looseString(string(b))
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	w := wire{
		ID:    looseString(r.ID),
		Owner: looseString(r.Owner),
		Type:  r.Type,
		Date:  r.Date,
		Field: r.Field,
		Notes: r.Notes,
	}
	switch d := r.Details.(type) {
	case MaintenanceDetails:
		w.Equipment, w.Issue, w.Parts, w.TimeSpent = d.Equipment, d.Issue, d.Parts, d.TimeSpent
	case FertigationDetails:
		w.FertilizerName, w.Quantity, w.Duration, w.Crop = d.FertilizerName, d.Quantity, d.Duration, d.Crop
	case IrrigationDetails:
		w.Method, w.Duration, w.Area, w.WaterSource = d.Method, d.Duration, d.Area, d.WaterSource
	case PesticideDetails:
		w.Chemical, w.ChemicalType, w.Quantity, w.Method, w.Crop = d.Chemical, d.ChemicalType, d.Quantity, d.Method, d.Crop
	case HerbicideDetails:
		w.HerbicideName, w.Quantity, w.Area = d.HerbicideName, d.Quantity, d.Area
	case PlantationDetails:
		w.PlantName, w.Variety, w.Number, w.Area = d.PlantName, d.Variety, d.Number, d.Area
	case nil:
	default:
		return nil, fmt.Errorf("marshal task record: unhandled details %T", r.Details)
	}
	return json.Marshal(w)
}

func (r *Record) UnmarshalJSON(b []byte) error {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if !w.Type.Valid() {
		return fmt.Errorf("unmarshal task record: %w: %q", ErrInvalidVariant, w.Type)
	}
	r.ID = string(w.ID)
	r.Owner = string(w.Owner)
	r.Type = w.Type
	r.Date = w.Date
	r.Field = w.Field
	r.Notes = w.Notes
	switch w.Type {
	case TypePlantMaintenance, TypeToolMaintenance:
		r.Details = MaintenanceDetails{Equipment: w.Equipment, Issue: w.Issue, Parts: w.Parts, TimeSpent: w.TimeSpent}
	case TypeFertigation:
		r.Details = FertigationDetails{FertilizerName: w.FertilizerName, Quantity: w.Quantity, Duration: w.Duration, Crop: w.Crop}
	case TypeIrrigation:
		r.Details = IrrigationDetails{Method: w.Method, Duration: w.Duration, Area: w.Area, WaterSource: w.WaterSource}
	case TypePesticide:
		r.Details = PesticideDetails{Chemical: w.Chemical, ChemicalType: w.ChemicalType, Quantity: w.Quantity, Method: w.Method, Crop: w.Crop}
	case TypeHerbicide:
		r.Details = HerbicideDetails{HerbicideName: w.HerbicideName, Quantity: w.Quantity, Area: w.Area}
	case TypePlantation:
		r.Details = PlantationDetails{PlantName: w.PlantName, Variety: w.Variety, Number: w.Number, Area: w.Area}
	}
	return nil
}
