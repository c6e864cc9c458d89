// AngelaMos | 2026
// service.go

package likes

import (
	"context"
	"fmt"

	"github.com/angelamos/carvault/internal/core"
)

const (
	MsgLiked        = "Submodel liked successfully"
	MsgAlreadyLiked = "Submodel already liked by this user"
	MsgUnliked      = "Submodel unliked successfully"
	MsgNotLiked     = "Submodel was not liked by this user"
)

var (
	ErrUserNotFound     = fmt.Errorf("user: %w", core.ErrNotFound)
	ErrSubmodelNotFound = fmt.Errorf("submodel: %w", core.ErrNotFound)
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Like adds the (modelID, submodelID) pair to the user's Like Set. Both the
// user and the submodel must exist at the time of the call. Liking a pair
// that is already present is not an error: the set is unchanged and the
// message says so.
func (s *Service) Like(
	ctx context.Context,
	userID, modelID, submodelID string,
) (string, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return "", err
	}

	exists, err := s.repo.SubmodelExists(ctx, modelID, submodelID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrSubmodelNotFound
	}

	inserted, err := s.repo.AddLike(ctx, userID, modelID, submodelID)
	if err != nil {
		return "", err
	}

	if !inserted {
		return MsgAlreadyLiked, nil
	}
	return MsgLiked, nil
}

// Unlike removes the pair from the user's Like Set. The submodel is not
// required to still exist: users can always unlike, including pairs left
// dangling by catalog deletions. Unliking an absent pair is not an error.
func (s *Service) Unlike(
	ctx context.Context,
	userID, modelID, submodelID string,
) (string, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return "", err
	}

	removed, err := s.repo.RemoveLike(ctx, userID, modelID, submodelID)
	if err != nil {
		return "", err
	}

	if !removed {
		return MsgNotLiked, nil
	}
	return MsgUnliked, nil
}

// ListLiked returns the user's liked submodels joined against the live
// catalog, in like order. Dangling pairs are silently skipped.
func (s *Service) ListLiked(
	ctx context.Context,
	userID string,
) ([]LikedSubmodel, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.repo.ListDetailed(ctx, userID)
}

// ListLikedPairs returns the raw Like Set, dangling pairs included.
func (s *Service) ListLikedPairs(
	ctx context.Context,
	userID string,
) ([]LikedPair, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.repo.ListPairs(ctx, userID)
}

func (s *Service) checkUser(ctx context.Context, userID string) error {
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
