// AngelaMos | 2026
// repository.go

package likes

import (
	"context"
	"fmt"

	"github.com/angelamos/carvault/internal/core"
)

type Repository interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	SubmodelExists(ctx context.Context, modelID, submodelID string) (bool, error)

	// AddLike reports whether a row was inserted; false means the pair was
	// already in the user's Like Set.
	AddLike(ctx context.Context, userID, modelID, submodelID string) (bool, error)

	// RemoveLike reports whether a row was deleted; false means the pair was
	// not in the user's Like Set.
	RemoveLike(ctx context.Context, userID, modelID, submodelID string) (bool, error)

	ListPairs(ctx context.Context, userID string) ([]LikedPair, error)
	ListDetailed(ctx context.Context, userID string) ([]LikedSubmodel, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) UserExists(
	ctx context.Context,
	userID string,
) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE id = $1 AND deleted_at IS NULL
		)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID); err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}

	return exists, nil
}

func (r *repository) SubmodelExists(
	ctx context.Context,
	modelID, submodelID string,
) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM submodels WHERE model_id = $1 AND id = $2
		)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, modelID, submodelID)
	if err != nil {
		return false, fmt.Errorf("submodel exists: %w", err)
	}

	return exists, nil
}

// AddLike is add-if-absent: the primary key on (user_id, model_id,
// submodel_id) makes concurrent duplicates collapse to a single row, and
// ON CONFLICT turns the duplicate into a no-op instead of an error.
func (r *repository) AddLike(
	ctx context.Context,
	userID, modelID, submodelID string,
) (bool, error) {
	query := `
		INSERT INTO user_likes (user_id, model_id, submodel_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, model_id, submodel_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, userID, modelID, submodelID)
	if err != nil {
		return false, fmt.Errorf("add like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add like: %w", err)
	}

	return rows > 0, nil
}

func (r *repository) RemoveLike(
	ctx context.Context,
	userID, modelID, submodelID string,
) (bool, error) {
	query := `
		DELETE FROM user_likes
		WHERE user_id = $1 AND model_id = $2 AND submodel_id = $3`

	result, err := r.db.ExecContext(ctx, query, userID, modelID, submodelID)
	if err != nil {
		return false, fmt.Errorf("remove like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove like: %w", err)
	}

	return rows > 0, nil
}

func (r *repository) ListPairs(
	ctx context.Context,
	userID string,
) ([]LikedPair, error) {
	query := `
		SELECT user_id, model_id, submodel_id, seq, created_at
		FROM user_likes
		WHERE user_id = $1
		ORDER BY seq ASC`

	pairs := []LikedPair{}
	if err := r.db.SelectContext(ctx, &pairs, query, userID); err != nil {
		return nil, fmt.Errorf("list liked pairs: %w", err)
	}

	return pairs, nil
}

// ListDetailed joins the Like Set against the live catalog in like order.
// Inner joins make this skip-on-miss: pairs whose model or submodel has been
// deleted simply produce no row.
func (r *repository) ListDetailed(
	ctx context.Context,
	userID string,
) ([]LikedSubmodel, error) {
	query := `
		SELECT
			m.id AS model_id, m.name AS model_name,
			s.id, s.model_id AS submodel_model_id, s.name, s.engine_type,
			s.horsepower, s.torque, s.transmission, s.year, s.image_url,
			s.weight, s.acceleration, s.top_speed, s.fuel_economy,
			s.position, s.created_at, s.updated_at
		FROM user_likes ul
		JOIN models m ON m.id = ul.model_id
		JOIN submodels s ON s.model_id = ul.model_id AND s.id = ul.submodel_id
		WHERE ul.user_id = $1
		ORDER BY ul.seq ASC`

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list liked submodels: %w", err)
	}
	defer rows.Close()

	liked := []LikedSubmodel{}
	for rows.Next() {
		var entry LikedSubmodel
		err := rows.Scan(
			&entry.ModelID,
			&entry.ModelName,
			&entry.Submodel.ID,
			&entry.Submodel.ModelID,
			&entry.Submodel.Name,
			&entry.Submodel.EngineType,
			&entry.Submodel.Horsepower,
			&entry.Submodel.Torque,
			&entry.Submodel.Transmission,
			&entry.Submodel.Year,
			&entry.Submodel.ImageURL,
			&entry.Submodel.Weight,
			&entry.Submodel.Acceleration,
			&entry.Submodel.TopSpeed,
			&entry.Submodel.FuelEconomy,
			&entry.Submodel.Position,
			&entry.Submodel.CreatedAt,
			&entry.Submodel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list liked submodels: %w", err)
		}
		liked = append(liked, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list liked submodels: %w", err)
	}

	return liked, nil
}
