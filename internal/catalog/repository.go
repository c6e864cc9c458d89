// AngelaMos | 2026
// repository.go

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/angelamos/carvault/internal/core"
)

type Repository interface {
	CreateModel(ctx context.Context, model *Model) error
	GetModel(ctx context.Context, id string) (*Model, error)
	GetModelByName(ctx context.Context, name string) (*Model, error)
	ListModels(ctx context.Context) ([]Model, error)
	ListPopularModels(ctx context.Context, limit int) ([]Model, error)
	UpdateModel(ctx context.Context, model *Model) error
	DeleteModel(ctx context.Context, id string) error

	ListSubmodels(ctx context.Context, modelID string) ([]Submodel, error)
	GetSubmodel(
		ctx context.Context,
		modelID, submodelID string,
	) (*Submodel, error)
	AddSubmodel(ctx context.Context, submodel *Submodel) error
	UpdateSubmodel(ctx context.Context, submodel *Submodel) error
	DeleteSubmodel(ctx context.Context, modelID, submodelID string) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const modelColumns = `
	id, name, year_introduced, year_discontinued, description,
	country, designer, body_style, image_url, created_at, updated_at`

const submodelColumns = `
	id, model_id, name, engine_type, horsepower, torque, transmission,
	year, image_url, weight, acceleration, top_speed, fuel_economy,
	position, created_at, updated_at`

// CreateModel inserts the model and any initial submodels atomically.
func (r *repository) CreateModel(ctx context.Context, model *Model) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO models (
				id, name, year_introduced, year_discontinued, description,
				country, designer, body_style, image_url
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING created_at, updated_at`

		err := tx.GetContext(ctx, model, query,
			model.ID,
			model.Name,
			model.YearIntroduced,
			model.YearDiscontinued,
			model.Description,
			model.Country,
			model.Designer,
			model.BodyStyle,
			model.ImageURL,
		)
		if err != nil {
			return fmt.Errorf("create model: %w", err)
		}

		for i := range model.Submodels {
			if err := insertSubmodel(ctx, tx, &model.Submodels[i]); err != nil {
				return err
			}
		}

		return nil
	})
}

func insertSubmodel(
	ctx context.Context,
	tx sqlx.ExtContext,
	submodel *Submodel,
) error {
	query := `
		INSERT INTO submodels (
			id, model_id, name, engine_type, horsepower, torque,
			transmission, year, image_url, weight, acceleration,
			top_speed, fuel_economy, position
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			(SELECT COALESCE(MAX(position) + 1, 0) FROM submodels WHERE model_id = $2)
		)
		RETURNING position, created_at, updated_at`

	row := tx.QueryRowxContext(ctx, query,
		submodel.ID,
		submodel.ModelID,
		submodel.Name,
		submodel.EngineType,
		submodel.Horsepower,
		submodel.Torque,
		submodel.Transmission,
		submodel.Year,
		submodel.ImageURL,
		submodel.Weight,
		submodel.Acceleration,
		submodel.TopSpeed,
		submodel.FuelEconomy,
	)

	err := row.Scan(
		&submodel.Position,
		&submodel.CreatedAt,
		&submodel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert submodel: %w", err)
	}

	return nil
}

func (r *repository) GetModel(ctx context.Context, id string) (*Model, error) {
	query := `
		SELECT` + modelColumns + `
		FROM models WHERE id = $1`

	var model Model
	err := r.db.GetContext(ctx, &model, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get model: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get model: %w", err)
	}

	submodels, err := r.ListSubmodels(ctx, id)
	if err != nil {
		return nil, err
	}
	model.Submodels = submodels

	return &model, nil
}

func (r *repository) GetModelByName(
	ctx context.Context,
	name string,
) (*Model, error) {
	query := `
		SELECT` + modelColumns + `
		FROM models WHERE name = $1`

	var model Model
	err := r.db.GetContext(ctx, &model, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get model by name: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get model by name: %w", err)
	}

	submodels, err := r.ListSubmodels(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	model.Submodels = submodels

	return &model, nil
}

func (r *repository) ListModels(ctx context.Context) ([]Model, error) {
	query := `
		SELECT` + modelColumns + `
		FROM models ORDER BY name ASC`

	var models []Model
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	if err := r.attachSubmodels(ctx, models); err != nil {
		return nil, err
	}

	return models, nil
}

// ListPopularModels orders by like count across all users' Like Sets.
func (r *repository) ListPopularModels(
	ctx context.Context,
	limit int,
) ([]Model, error) {
	query := `
		SELECT` + modelColumns + `
		FROM models m
		LEFT JOIN (
			SELECT model_id, COUNT(*) AS like_count
			FROM user_likes
			GROUP BY model_id
		) l ON l.model_id = m.id
		ORDER BY COALESCE(l.like_count, 0) DESC, m.name ASC
		LIMIT $1`

	var models []Model
	if err := r.db.SelectContext(ctx, &models, query, limit); err != nil {
		return nil, fmt.Errorf("list popular models: %w", err)
	}

	if err := r.attachSubmodels(ctx, models); err != nil {
		return nil, err
	}

	return models, nil
}

func (r *repository) attachSubmodels(
	ctx context.Context,
	models []Model,
) error {
	if len(models) == 0 {
		return nil
	}

	ids := make([]string, 0, len(models))
	for i := range models {
		ids = append(ids, models[i].ID)
	}

	query, args, err := sqlx.In(
		`SELECT`+submodelColumns+`
		FROM submodels
		WHERE model_id IN (?)
		ORDER BY model_id, position ASC`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("attach submodels: %w", err)
	}

	var submodels []Submodel
	query = r.db.Rebind(query)
	if err := r.db.SelectContext(ctx, &submodels, query, args...); err != nil {
		return fmt.Errorf("attach submodels: %w", err)
	}

	byModel := make(map[string][]Submodel, len(models))
	for _, s := range submodels {
		byModel[s.ModelID] = append(byModel[s.ModelID], s)
	}

	for i := range models {
		models[i].Submodels = byModel[models[i].ID]
		if models[i].Submodels == nil {
			models[i].Submodels = []Submodel{}
		}
	}

	return nil
}

func (r *repository) UpdateModel(ctx context.Context, model *Model) error {
	query := `
		UPDATE models
		SET name = $2, year_introduced = $3, year_discontinued = $4,
		    description = $5, country = $6, designer = $7, body_style = $8,
		    image_url = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &model.UpdatedAt, query,
		model.ID,
		model.Name,
		model.YearIntroduced,
		model.YearDiscontinued,
		model.Description,
		model.Country,
		model.Designer,
		model.BodyStyle,
		model.ImageURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update model: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update model: %w", err)
	}

	return nil
}

// DeleteModel removes the model and, via cascade, its submodels. Like Set
// entries pointing at it are left in place and filtered out at read time.
func (r *repository) DeleteModel(ctx context.Context, id string) error {
	query := `DELETE FROM models WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete model: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete model: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete model: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ListSubmodels(
	ctx context.Context,
	modelID string,
) ([]Submodel, error) {
	query := `
		SELECT` + submodelColumns + `
		FROM submodels
		WHERE model_id = $1
		ORDER BY position ASC`

	submodels := []Submodel{}
	if err := r.db.SelectContext(ctx, &submodels, query, modelID); err != nil {
		return nil, fmt.Errorf("list submodels: %w", err)
	}

	return submodels, nil
}

func (r *repository) GetSubmodel(
	ctx context.Context,
	modelID, submodelID string,
) (*Submodel, error) {
	query := `
		SELECT` + submodelColumns + `
		FROM submodels
		WHERE model_id = $1 AND id = $2`

	var submodel Submodel
	err := r.db.GetContext(ctx, &submodel, query, modelID, submodelID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get submodel: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get submodel: %w", err)
	}

	return &submodel, nil
}

func (r *repository) AddSubmodel(
	ctx context.Context,
	submodel *Submodel,
) error {
	return insertSubmodel(ctx, r.db, submodel)
}

// UpdateSubmodel is a keyed update of the owned sub-collection: the row is
// addressed by (model_id, id) and the id itself never changes.
func (r *repository) UpdateSubmodel(
	ctx context.Context,
	submodel *Submodel,
) error {
	query := `
		UPDATE submodels
		SET name = $3, engine_type = $4, horsepower = $5, torque = $6,
		    transmission = $7, year = $8, image_url = $9, weight = $10,
		    acceleration = $11, top_speed = $12, fuel_economy = $13,
		    updated_at = NOW()
		WHERE model_id = $1 AND id = $2
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &submodel.UpdatedAt, query,
		submodel.ModelID,
		submodel.ID,
		submodel.Name,
		submodel.EngineType,
		submodel.Horsepower,
		submodel.Torque,
		submodel.Transmission,
		submodel.Year,
		submodel.ImageURL,
		submodel.Weight,
		submodel.Acceleration,
		submodel.TopSpeed,
		submodel.FuelEconomy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update submodel: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update submodel: %w", err)
	}

	return nil
}

func (r *repository) DeleteSubmodel(
	ctx context.Context,
	modelID, submodelID string,
) error {
	query := `DELETE FROM submodels WHERE model_id = $1 AND id = $2`

	result, err := r.db.ExecContext(ctx, query, modelID, submodelID)
	if err != nil {
		return fmt.Errorf("delete submodel: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete submodel: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete submodel: %w", core.ErrNotFound)
	}

	return nil
}
