// AngelaMos | 2026
// dto.go

package likes

import (
	"github.com/angelamos/carvault/internal/catalog"
)

type LikeRequest struct {
	ModelID    string `json:"modelId"    validate:"required"`
	SubmodelID string `json:"submodelId" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// LikedSubmodelResponse carries the model context alongside the submodel so
// clients never need a second lookup to render a liked entry.
type LikedSubmodelResponse struct {
	ModelID   string                   `json:"modelId"`
	ModelName string                   `json:"modelName"`
	Submodel  catalog.SubmodelResponse `json:"submodel"`
}

type LikedSubmodelsResponse struct {
	LikedSubmodels []LikedSubmodelResponse `json:"likedSubmodels"`
}

type LikedPairResponse struct {
	ModelID    string `json:"modelId"`
	SubmodelID string `json:"submodelId"`
}

type LikedPairsResponse struct {
	LikedSubmodels []LikedPairResponse `json:"likedSubmodels"`
}

func ToLikedSubmodelsResponse(liked []LikedSubmodel) LikedSubmodelsResponse {
	entries := make([]LikedSubmodelResponse, 0, len(liked))
	for i := range liked {
		entries = append(entries, LikedSubmodelResponse{
			ModelID:   liked[i].ModelID,
			ModelName: liked[i].ModelName,
			Submodel:  catalog.ToSubmodelResponse(&liked[i].Submodel),
		})
	}
	return LikedSubmodelsResponse{LikedSubmodels: entries}
}

func ToLikedPairsResponse(pairs []LikedPair) LikedPairsResponse {
	entries := make([]LikedPairResponse, 0, len(pairs))
	for _, p := range pairs {
		entries = append(entries, LikedPairResponse{
			ModelID:    p.ModelID,
			SubmodelID: p.SubmodelID,
		})
	}
	return LikedPairsResponse{LikedSubmodels: entries}
}
