// AngelaMos | 2026
// entity.go

package likes

import (
	"time"

	"github.com/angelamos/carvault/internal/catalog"
)

// LikedPair is one entry of a user's Like Set: a reference to a submodel by
// its (modelID, submodelID) pair. Pairs are stored without foreign keys to
// the catalog, so a stored pair may outlive the submodel it points at.
type LikedPair struct {
	UserID     string    `db:"user_id"`
	ModelID    string    `db:"model_id"`
	SubmodelID string    `db:"submodel_id"`
	Seq        int64     `db:"seq"`
	CreatedAt  time.Time `db:"created_at"`
}

// LikedSubmodel is a Like Set entry joined against the live catalog. Pairs
// whose target no longer exists never materialize as one of these.
type LikedSubmodel struct {
	ModelID   string
	ModelName string
	Submodel  catalog.Submodel
}
