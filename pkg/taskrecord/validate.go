package taskrecord

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Validation rejections. Callers test with errors.Is.
var (
	ErrInvalidVariant = errors.New("unknown task type")
	ErrInvalidDate    = errors.New("invalid date")
	ErrMissingField   = errors.New("field is required")
	ErrInvalidChoice  = errors.New("value not in allowed set")
)

// IrrigationMethods are the accepted values for the irrigation method
// attribute. Empty is also accepted.
var IrrigationMethods = []string{"Drip", "Sprinkler", "Flood", "Furrow", "Centre Pivot", "Manual"}

// ChemicalTypes are the accepted values for the pesticide chemicalType
// attribute. Empty is also accepted.
var ChemicalTypes = []string{"Insecticide", "Pesticide", "Fungicide"}

// Input is untyped form input: every possible attribute, all strings.
// New picks out the ones belonging to the requested kind and silently
// drops the rest, so callers never pre-filter by kind.
type Input struct {
	Type  string `json:"type"`
	Date  string `json:"date"`
	Field string `json:"field"`
	Notes string `json:"notes"`

	Equipment      string `json:"equipment"`
	Issue          string `json:"issue"`
	Parts          string `json:"parts"`
	TimeSpent      string `json:"timeSpent"`
	FertilizerName string `json:"fertilizerName"`
	Quantity       string `json:"quantity"`
	Duration       string `json:"duration"`
	Crop           string `json:"crop"`
	Method         string `json:"method"`
	Area           string `json:"area"`
	WaterSource    string `json:"waterSource"`
	Chemical       string `json:"chemical"`
	ChemicalType   string `json:"chemicalType"`
	PlantName      string `json:"plantName"`
	Variety        string `json:"variety"`
	Number         string `json:"number"`
	HerbicideName  string `json:"herbicideName"`
}

// New validates raw input into a well-formed Record. Pure: no clock reads
// other than defaulting a missing date to today, no I/O. The returned
// record has no ID or Owner; the store that accepts it assigns those.
func New(in Input) (Record, error) {
	t := Type(strings.TrimSpace(in.Type))
	if !t.Valid() {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidVariant, in.Type)
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = time.Now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
	}

	field := strings.TrimSpace(in.Field)
	if field == "" {
		return Record{}, ErrMissingField
	}

	r := Record{
		Type:  t,
		Date:  date,
		Field: field,
		Notes: strings.TrimSpace(in.Notes),
	}

	switch t {
	case TypePlantMaintenance, TypeToolMaintenance:
		r.Details = MaintenanceDetails{
			Equipment: strings.TrimSpace(in.Equipment),
			Issue:     strings.TrimSpace(in.Issue),
			Parts:     strings.TrimSpace(in.Parts),
			TimeSpent: strings.TrimSpace(in.TimeSpent),
		}
	case TypeFertigation:
		r.Details = FertigationDetails{
			FertilizerName: strings.TrimSpace(in.FertilizerName),
			Quantity:       strings.TrimSpace(in.Quantity),
			Duration:       strings.TrimSpace(in.Duration),
			Crop:           strings.TrimSpace(in.Crop),
		}
	case TypeIrrigation:
		method := strings.TrimSpace(in.Method)
		if err := CheckChoice(method, IrrigationMethods); err != nil {
			return Record{}, fmt.Errorf("method: %w", err)
		}
		r.Details = IrrigationDetails{
			Method:      method,
			Duration:    strings.TrimSpace(in.Duration),
			Area:        strings.TrimSpace(in.Area),
			WaterSource: strings.TrimSpace(in.WaterSource),
		}
	case TypePesticide:
		ct := strings.TrimSpace(in.ChemicalType)
		if err := CheckChoice(ct, ChemicalTypes); err != nil {
			return Record{}, fmt.Errorf("chemicalType: %w", err)
		}
		r.Details = PesticideDetails{
			Chemical:     strings.TrimSpace(in.Chemical),
			ChemicalType: ct,
			Quantity:     strings.TrimSpace(in.Quantity),
			Method:       strings.TrimSpace(in.Method),
			Crop:         strings.TrimSpace(in.Crop),
		}
	case TypeHerbicide:
		r.Details = HerbicideDetails{
			HerbicideName: strings.TrimSpace(in.HerbicideName),
			Quantity:      strings.TrimSpace(in.Quantity),
			Area:          strings.TrimSpace(in.Area),
		}
	case TypePlantation:
		r.Details = PlantationDetails{
			PlantName: strings.TrimSpace(in.PlantName),
			Variety:   strings.TrimSpace(in.Variety),
			Number:    strings.TrimSpace(in.Number),
			Area:      strings.TrimSpace(in.Area),
		}
	}
	return r, nil
}

// Today is the caller's current local calendar date. No timezone
// normalization happens anywhere; dates compare as the strings they were
// written as.
func Today() string { return time.Now().Format(DateLayout) }

// CheckChoice accepts v when it is empty or appears in allowed.
func CheckChoice(v string, allowed []string) error {
	if v == "" {
		return nil
	}
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidChoice, v)
}

// IsValidationError reports whether err is one of the input rejections.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidVariant) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidChoice)
}
