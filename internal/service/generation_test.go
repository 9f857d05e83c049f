package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/errs"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/repository"
)

type fakePromptRepo struct {
	entries []model.PromptEntry
}

var _ repository.PromptRepository = (*fakePromptRepo)(nil)

func (f *fakePromptRepo) Append(_ context.Context, e *model.PromptEntry) error {
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakePromptRepo) List(_ context.Context, limit int) ([]model.PromptEntry, error) {
	out := append([]model.PromptEntry(nil), f.entries...)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestGenerate_RecordsHistory(t *testing.T) {
	ctx := context.Background()
	repo := &fakePromptRepo{}
	s := NewGenerationService(repo, nil, 0)

	img, err := s.Generate(ctx, "a sunset over water", model.GenerationImage)
	require.NoError(t, err)
	require.Contains(t, img.ResultURL, "picsum.photos")

	vid, err := s.Generate(ctx, "the same but moving", model.GenerationVideo)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(vid.ResultURL, ".mp4"))

	speech, err := s.Generate(ctx, "say it out loud", model.GenerationSpeech)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(speech.ResultURL, ".mp3"))

	hist, err := s.History(ctx, 2)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	require.Equal(t, speech.ID, hist[0].ID, "newest first")
}

func TestGenerate_Validation(t *testing.T) {
	ctx := context.Background()
	s := NewGenerationService(&fakePromptRepo{}, nil, 0)

	_, err := s.Generate(ctx, "", model.GenerationImage)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = s.Generate(ctx, "x", model.GenerationKind("hologram"))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestGenerate_RespectsContext(t *testing.T) {
	repo := &fakePromptRepo{}
	s := NewGenerationService(repo, nil, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Generate(ctx, "never finishes", model.GenerationImage)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, repo.entries, "nothing recorded on cancellation")
}

func TestNewGenerationService_DefaultDelay(t *testing.T) {
	s := NewGenerationService(&fakePromptRepo{}, nil, -1)
	require.Equal(t, defaultGenerationDelay, s.delay)
}
