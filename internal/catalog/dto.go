// AngelaMos | 2026
// dto.go

package catalog

import (
	"time"
)

type CreateSubmodelRequest struct {
	Name         string   `json:"name"         validate:"required,min=1,max=100"`
	EngineType   string   `json:"engineType"   validate:"required,min=1,max=100"`
	Horsepower   int      `json:"horsepower"   validate:"required,min=1"`
	Torque       int      `json:"torque"       validate:"required,min=1"`
	Transmission string   `json:"transmission" validate:"required,min=1,max=100"`
	Year         int      `json:"year"         validate:"required,min=1900"`
	ImageURL     string   `json:"imageURL"     validate:"omitempty,url"`
	Weight       *int     `json:"weight,omitempty"       validate:"omitempty,min=1"`
	Acceleration *float64 `json:"acceleration,omitempty" validate:"omitempty,gt=0"`
	TopSpeed     *int     `json:"topSpeed,omitempty"     validate:"omitempty,min=1"`
	FuelEconomy  string   `json:"fuelEconomy,omitempty"  validate:"omitempty,max=100"`
}

type CreateModelRequest struct {
	Name             string                  `json:"name"             validate:"required,min=1,max=100"`
	YearIntroduced   int                     `json:"yearIntroduced"   validate:"required,min=1900"`
	YearDiscontinued int                     `json:"yearDiscontinued" validate:"omitempty,min=1900"`
	Description      string                  `json:"description"      validate:"required,min=1"`
	Country          string                  `json:"country"          validate:"omitempty,max=100"`
	Designer         string                  `json:"designer"         validate:"omitempty,max=100"`
	BodyStyle        string                  `json:"bodyStyle"        validate:"omitempty,max=100"`
	ImageURL         string                  `json:"imageURL"         validate:"omitempty,url"`
	Submodels        []CreateSubmodelRequest `json:"submodels"        validate:"omitempty,dive"`
}

type UpdateModelRequest struct {
	Name             *string `json:"name,omitempty"             validate:"omitempty,min=1,max=100"`
	YearIntroduced   *int    `json:"yearIntroduced,omitempty"   validate:"omitempty,min=1900"`
	YearDiscontinued *int    `json:"yearDiscontinued,omitempty" validate:"omitempty,min=1900"`
	Description      *string `json:"description,omitempty"      validate:"omitempty,min=1"`
	Country          *string `json:"country,omitempty"          validate:"omitempty,max=100"`
	Designer         *string `json:"designer,omitempty"         validate:"omitempty,max=100"`
	BodyStyle        *string `json:"bodyStyle,omitempty"        validate:"omitempty,max=100"`
	ImageURL         *string `json:"imageURL,omitempty"         validate:"omitempty,url"`
}

type SubmodelResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	EngineType   string   `json:"engineType"`
	Horsepower   int      `json:"horsepower"`
	Torque       int      `json:"torque"`
	Transmission string   `json:"transmission"`
	Year         int      `json:"year"`
	ImageURL     string   `json:"imageURL,omitempty"`
	Weight       *int     `json:"weight,omitempty"`
	Acceleration *float64 `json:"acceleration,omitempty"`
	TopSpeed     *int     `json:"topSpeed,omitempty"`
	FuelEconomy  string   `json:"fuelEconomy,omitempty"`
}

type ModelResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	YearIntroduced   int                `json:"yearIntroduced"`
	YearDiscontinued int                `json:"yearDiscontinued,omitempty"`
	Description      string             `json:"description"`
	Country          string             `json:"country,omitempty"`
	Designer         string             `json:"designer,omitempty"`
	BodyStyle        string             `json:"bodyStyle,omitempty"`
	ImageURL         string             `json:"imageURL,omitempty"`
	Submodels        []SubmodelResponse `json:"submodels"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

func ToSubmodelResponse(s *Submodel) SubmodelResponse {
	return SubmodelResponse{
		ID:           s.ID,
		Name:         s.Name,
		EngineType:   s.EngineType,
		Horsepower:   s.Horsepower,
		Torque:       s.Torque,
		Transmission: s.Transmission,
		Year:         s.Year,
		ImageURL:     s.ImageURL,
		Weight:       s.Weight,
		Acceleration: s.Acceleration,
		TopSpeed:     s.TopSpeed,
		FuelEconomy:  s.FuelEconomy,
	}
}

func ToSubmodelResponseList(submodels []Submodel) []SubmodelResponse {
	responses := make([]SubmodelResponse, 0, len(submodels))
	for _, s := range submodels {
		responses = append(responses, ToSubmodelResponse(&s))
	}
	return responses
}

func ToModelResponse(m *Model) ModelResponse {
	return ModelResponse{
		ID:               m.ID,
		Name:             m.Name,
		YearIntroduced:   m.YearIntroduced,
		YearDiscontinued: m.YearDiscontinued,
		Description:      m.Description,
		Country:          m.Country,
		Designer:         m.Designer,
		BodyStyle:        m.BodyStyle,
		ImageURL:         m.ImageURL,
		Submodels:        ToSubmodelResponseList(m.Submodels),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToModelResponseList(models []Model) []ModelResponse {
	responses := make([]ModelResponse, 0, len(models))
	for _, m := range models {
		responses = append(responses, ToModelResponse(&m))
	}
	return responses
}
