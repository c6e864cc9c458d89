// AngelaMos | 2026
// service.go

package catalog

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateModel(
	ctx context.Context,
	req *CreateModelRequest,
) (*Model, error) {
	model := &Model{
		ID:               uuid.New().String(),
		Name:             req.Name,
		YearIntroduced:   req.YearIntroduced,
		YearDiscontinued: req.YearDiscontinued,
		Description:      req.Description,
		Country:          req.Country,
		Designer:         req.Designer,
		BodyStyle:        req.BodyStyle,
		ImageURL:         req.ImageURL,
		Submodels:        make([]Submodel, 0, len(req.Submodels)),
	}

	for _, sub := range req.Submodels {
		model.Submodels = append(model.Submodels, newSubmodel(model.ID, &sub))
	}

	if err := s.repo.CreateModel(ctx, model); err != nil {
		return nil, err
	}

	return model, nil
}

func newSubmodel(modelID string, req *CreateSubmodelRequest) Submodel {
	return Submodel{
		ID:           uuid.New().String(),
		ModelID:      modelID,
		Name:         req.Name,
		EngineType:   req.EngineType,
		Horsepower:   req.Horsepower,
		Torque:       req.Torque,
		Transmission: req.Transmission,
		Year:         req.Year,
		ImageURL:     req.ImageURL,
		Weight:       req.Weight,
		Acceleration: req.Acceleration,
		TopSpeed:     req.TopSpeed,
		FuelEconomy:  req.FuelEconomy,
	}
}

func (s *Service) GetModel(ctx context.Context, id string) (*Model, error) {
	return s.repo.GetModel(ctx, id)
}

func (s *Service) GetModelByName(
	ctx context.Context,
	name string,
) (*Model, error) {
	return s.repo.GetModelByName(ctx, name)
}

func (s *Service) ListModels(ctx context.Context) ([]Model, error) {
	return s.repo.ListModels(ctx)
}

const (
	defaultPopularLimit = 10
	maxPopularLimit     = 50
)

func (s *Service) ListPopularModels(
	ctx context.Context,
	limit int,
) ([]Model, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	if limit > maxPopularLimit {
		limit = maxPopularLimit
	}

	return s.repo.ListPopularModels(ctx, limit)
}

func (s *Service) UpdateModel(
	ctx context.Context,
	id string,
	req *UpdateModelRequest,
) (*Model, error) {
	model, err := s.repo.GetModel(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		model.Name = *req.Name
	}
	if req.YearIntroduced != nil {
		model.YearIntroduced = *req.YearIntroduced
	}
	if req.YearDiscontinued != nil {
		model.YearDiscontinued = *req.YearDiscontinued
	}
	if req.Description != nil {
		model.Description = *req.Description
	}
	if req.Country != nil {
		model.Country = *req.Country
	}
	if req.Designer != nil {
		model.Designer = *req.Designer
	}
	if req.BodyStyle != nil {
		model.BodyStyle = *req.BodyStyle
	}
	if req.ImageURL != nil {
		model.ImageURL = *req.ImageURL
	}

	if err := s.repo.UpdateModel(ctx, model); err != nil {
		return nil, err
	}

	return model, nil
}

func (s *Service) DeleteModel(ctx context.Context, id string) error {
	return s.repo.DeleteModel(ctx, id)
}

func (s *Service) ListSubmodels(
	ctx context.Context,
	modelID string,
) ([]Submodel, error) {
	if _, err := s.repo.GetModel(ctx, modelID); err != nil {
		return nil, err
	}

	return s.repo.ListSubmodels(ctx, modelID)
}

func (s *Service) GetSubmodel(
	ctx context.Context,
	modelID, submodelID string,
) (*Submodel, error) {
	return s.repo.GetSubmodel(ctx, modelID, submodelID)
}

func (s *Service) AddSubmodel(
	ctx context.Context,
	modelID string,
	req *CreateSubmodelRequest,
) (*Submodel, error) {
	if _, err := s.repo.GetModel(ctx, modelID); err != nil {
		return nil, err
	}

	submodel := newSubmodel(modelID, req)
	if err := s.repo.AddSubmodel(ctx, &submodel); err != nil {
		return nil, err
	}

	return &submodel, nil
}

func (s *Service) UpdateSubmodel(
	ctx context.Context,
	modelID, submodelID string,
	req *CreateSubmodelRequest,
) (*Submodel, error) {
	submodel, err := s.repo.GetSubmodel(ctx, modelID, submodelID)
	if err != nil {
		return nil, err
	}

	submodel.Name = req.Name
	submodel.EngineType = req.EngineType
	submodel.Horsepower = req.Horsepower
	submodel.Torque = req.Torque
	submodel.Transmission = req.Transmission
	submodel.Year = req.Year
	submodel.ImageURL = req.ImageURL
	submodel.Weight = req.Weight
	submodel.Acceleration = req.Acceleration
	submodel.TopSpeed = req.TopSpeed
	submodel.FuelEconomy = req.FuelEconomy

	if err := s.repo.UpdateSubmodel(ctx, submodel); err != nil {
		return nil, err
	}

	return submodel, nil
}

func (s *Service) DeleteSubmodel(
	ctx context.Context,
	modelID, submodelID string,
) error {
	return s.repo.DeleteSubmodel(ctx, modelID, submodelID)
}
