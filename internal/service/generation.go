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
)

// defaultGenerationDelay simulates backend latency before the placeholder
// result comes back.
const defaultGenerationDelay = 1500 * time.Millisecond

// GenerationService is the mocked content-generation backend plus the prompt
// history it feeds. Only the signatures are the contract; a real backend
// replaces the placeholder URLs.
type GenerationService interface {
	// Generate waits a short timer, records the prompt, and returns the entry
	// with a canned placeholder URL.
	Generate(ctx context.Context, prompt string, kind model.GenerationKind) (*model.PromptEntry, error)
	// History returns up to limit entries, newest first (limit <= 0 means all).
	History(ctx context.Context, limit int) ([]model.PromptEntry, error)
}

type GenerationServiceImpl struct {
	repo   repository.PromptRepository
	mirror *mirror.Mirror
	delay  time.Duration
}

// NewGenerationService constructs GenerationService. A negative delay means
// the default; zero disables the simulated latency (tests).
func NewGenerationService(repo repository.PromptRepository, m *mirror.Mirror, delay time.Duration) *GenerationServiceImpl {
	if delay < 0 {
		delay = defaultGenerationDelay
	}
	return &GenerationServiceImpl{repo: repo, mirror: m, delay: delay}
}

// Generate validates input, simulates latency, and persists a history entry.
func (s *GenerationServiceImpl) Generate(ctx context.Context, prompt string, kind model.GenerationKind) (*model.PromptEntry, error) {
	if prompt == "" {
		return nil, fmt.Errorf("validation: empty prompt: %w", errs.ErrInvalidArgument)
	}
	switch kind {
	case model.GenerationImage, model.GenerationVideo, model.GenerationSpeech:
	default:
		return nil, fmt.Errorf("validation: unknown kind %q: %w", kind, errs.ErrInvalidArgument)
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	id := uuid.Must(uuid.NewV4())
	e := &model.PromptEntry{
		ID:        id,
		Prompt:    prompt,
		Kind:      kind,
		ResultURL: placeholderURL(id, kind),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, e); err != nil {
		return nil, err
	}
	s.mirror.SavePrompt(ctx, e)
	return e, nil
}

// History returns recorded generations, newest first.
func (s *GenerationServiceImpl) History(ctx context.Context, limit int) ([]model.PromptEntry, error) {
	return s.repo.List(ctx, limit)
}

// placeholderURL fabricates a deterministic stand-in result per entry.
func placeholderURL(id uuid.UUID, kind model.GenerationKind) string {
	switch kind {
	case model.GenerationVideo:
		return fmt.Sprintf("https://cdn.luxevision.dev/mock/%s.mp4", id)
	case model.GenerationSpeech:
		return fmt.Sprintf("https://cdn.luxevision.dev/mock/%s.mp3", id)
	default:
		return fmt.Sprintf("https://picsum.photos/seed/%s/1024/1024", id)
	}
}
