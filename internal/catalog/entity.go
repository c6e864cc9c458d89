// AngelaMos | 2026
// entity.go

package catalog

import (
	"time"
)

// Model is a car model. Its submodels form an owned sub-collection keyed by
// (model_id, id): they have no lifecycle outside the parent and are removed
// with it.
type Model struct {
	ID               string    `db:"id"`
	Name             string    `db:"name"`
	YearIntroduced   int       `db:"year_introduced"`
	YearDiscontinued int       `db:"year_discontinued"`
	Description      string    `db:"description"`
	Country          string    `db:"country"`
	Designer         string    `db:"designer"`
	BodyStyle        string    `db:"body_style"`
	ImageURL         string    `db:"image_url"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`

	Submodels []Submodel `db:"-"`
}

// Submodel is a trim/variant of a Model. The ID is assigned at creation and
// never changes; Position preserves insertion order for display.
type Submodel struct {
	ID           string    `db:"id"`
	ModelID      string    `db:"model_id"`
	Name         string    `db:"name"`
	EngineType   string    `db:"engine_type"`
	Horsepower   int       `db:"horsepower"`
	Torque       int       `db:"torque"`
	Transmission string    `db:"transmission"`
	Year         int       `db:"year"`
	ImageURL     string    `db:"image_url"`
	Weight       *int      `db:"weight"`
	Acceleration *float64  `db:"acceleration"`
	TopSpeed     *int      `db:"top_speed"`
	FuelEconomy  string    `db:"fuel_economy"`
	Position     int       `db:"position"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
