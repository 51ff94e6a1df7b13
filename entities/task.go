package entities

import "time"

// Task is one logged farm activity row, scoped to its owning user.
// Date is kept as a YYYY-MM-DD string so SQL ordering and the client's
// string-equality filters agree with each other.
type Task struct {
	TaskID uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index" json:"owner"`
	Type   string `json:"type"` // plant-maintenance|tool-maintenance|fertigation|irrigation|pesticide|herbicide|plantation
	Date   string `gorm:"index" json:"date"`
	Field  string `json:"field"`
	Notes  string `json:"notes"`

	// Variant attributes; only the columns of the row's own type are set.
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

	CreatedAt time.Time
	UpdatedAt time.Time
}
