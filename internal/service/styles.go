package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/errs"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/mirror"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/repository"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/stylemix"
)

// StyleService defines operations over the style library and the mixer.
type StyleService interface {
	// CreateStyle extracts features from the image and persists the reference.
	CreateStyle(ctx context.Context, userID, name, imageURL string) (*model.StyleReference, error)
	// GetStyle loads a style reference by id.
	GetStyle(ctx context.Context, id uuid.UUID) (*model.StyleReference, error)
	// ListStyles returns a user's style references (all when userID is empty).
	ListStyles(ctx context.Context, userID string) ([]model.StyleReference, error)
	// DeleteStyle removes a style reference.
	DeleteStyle(ctx context.Context, id uuid.UUID) error
	// Mix loads the referenced styles and blends them by ratio.
	Mix(ctx context.Context, ids []uuid.UUID, ratios []float64) (model.StyleFeatures, error)
}

type StyleServiceImpl struct {
	repo   repository.StyleRepository
	mirror *mirror.Mirror
}

// NewStyleService constructs StyleService. The mirror may be nil (disabled).
func NewStyleService(repo repository.StyleRepository, m *mirror.Mirror) *StyleServiceImpl {
	return &StyleServiceImpl{repo: repo, mirror: m}
}

// CreateStyle runs the (mocked) extractor and persists the result. Style
// references are immutable once created except via DeleteStyle.
func (s *StyleServiceImpl) CreateStyle(ctx context.Context, userID, name, imageURL string) (*model.StyleReference, error) {
	if name == "" || imageURL == "" {
		return nil, fmt.Errorf("validation: empty name/imageURL: %w", errs.ErrInvalidArgument)
	}
	ref := &model.StyleReference{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    userID,
		Name:      name,
		ImageURL:  imageURL,
		Features:  stylemix.ExtractFeatures(imageURL),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, ref); err != nil {
		return nil, err
	}
	s.mirror.SaveStyle(ctx, ref)
	return ref, nil
}

// GetStyle loads a style reference by id.
func (s *StyleServiceImpl) GetStyle(ctx context.Context, id uuid.UUID) (*model.StyleReference, error) {
	return s.repo.Get(ctx, id)
}

// ListStyles returns style references, newest first.
func (s *StyleServiceImpl) ListStyles(ctx context.Context, userID string) ([]model.StyleReference, error) {
	return s.repo.List(ctx, userID)
}

// DeleteStyle removes a style reference locally and from the mirror.
func (s *StyleServiceImpl) DeleteStyle(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.mirror.DeleteStyle(ctx, id)
	return nil
}

// Mix resolves the referenced styles in input order and blends them.
func (s *StyleServiceImpl) Mix(ctx context.Context, ids []uuid.UUID, ratios []float64) (model.StyleFeatures, error) {
	if len(ids) != len(ratios) {
		return model.StyleFeatures{}, fmt.Errorf("ids/ratios length mismatch (%d != %d): %w",
			len(ids), len(ratios), errs.ErrInvalidArgument)
	}
	styles := make([]model.StyleReference, 0, len(ids))
	for _, id := range ids {
		ref, err := s.repo.Get(ctx, id)
		if err != nil {
			return model.StyleFeatures{}, fmt.Errorf("style %s: %w", id, err)
		}
		styles = append(styles, *ref)
	}
	return stylemix.Mix(styles, ratios)
}
