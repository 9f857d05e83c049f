// Package service implements the application operations on top of the
// repositories, the engines, and the best-effort mirror.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/audio"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/errs"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/mirror"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/repository"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/timeline"
)

// Project creation defaults.
const (
	defaultDuration       = 10.0
	defaultFPS            = model.FPS30
	defaultResolution     = model.Resolution1080p
	defaultOpeningPrompt  = "opening scene"
	defaultClosingPrompt  = "closing scene"
	defaultTransitionSecs = 1.0
	beatTransitionSecs    = 0.5
)

// TimelineService defines operations over timeline projects and keyframes.
type TimelineService interface {
	// CreateProject seeds a project with two boundary keyframes and persists it.
	CreateProject(ctx context.Context, name string) (*model.TimelineProject, error)
	// GetProject loads a project by id.
	GetProject(ctx context.Context, id string) (*model.TimelineProject, error)
	// ListProjects returns all projects, newest first.
	ListProjects(ctx context.Context) ([]model.TimelineProject, error)
	// DeleteProject removes a project and its embedded keyframes.
	DeleteProject(ctx context.Context, id string) error
	// AddKeyframe appends a keyframe with default transition and re-sorts.
	AddKeyframe(ctx context.Context, projectID string, at float64, prompt string) (*model.Keyframe, error)
	// UpdateKeyframe merges a partial update into one keyframe and re-sorts.
	UpdateKeyframe(ctx context.Context, projectID string, keyframeID uuid.UUID, patch model.KeyframePatch) error
	// DeleteKeyframe removes a keyframe; a missing project is a silent no-op.
	DeleteKeyframe(ctx context.Context, projectID string, keyframeID uuid.UUID) error
	// Preview derives display segments from the current keyframe state.
	Preview(ctx context.Context, projectID string) ([]timeline.Segment, error)
	// ExportFrames derives one prompt per output frame.
	ExportFrames(ctx context.Context, projectID string) (timeline.FrameExport, error)
	// GenerateAudioReactive replaces interior keyframes with beat-aligned ones.
	GenerateAudioReactive(ctx context.Context, projectID, audioURL string) error
}

type TimelineServiceImpl struct {
	repo     repository.ProjectRepository
	mirror   *mirror.Mirror
	analyzer audio.Analyzer
}

// NewTimelineService constructs TimelineService. The mirror may be nil
// (disabled); the analyzer defaults to the mock detector.
func NewTimelineService(repo repository.ProjectRepository, m *mirror.Mirror, an audio.Analyzer) *TimelineServiceImpl {
	if an == nil {
		an = audio.NewMockAnalyzer()
	}
	return &TimelineServiceImpl{repo: repo, mirror: m, analyzer: an}
}

// save is the single write path: stamps UpdatedAt, upserts locally, then
// mirrors best-effort.
func (s *TimelineServiceImpl) save(ctx context.Context, p *model.TimelineProject) error {
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Put(ctx, p); err != nil {
		return err
	}
	s.mirror.SaveProject(ctx, p)
	return nil
}

// CreateProject allocates a time-derived id and seeds the boundary keyframes.
func (s *TimelineServiceImpl) CreateProject(ctx context.Context, name string) (*model.TimelineProject, error) {
	if name == "" {
		return nil, fmt.Errorf("validation: empty name: %w", errs.ErrInvalidArgument)
	}
	now := time.Now().UTC()
	p := &model.TimelineProject{
		ID:       strconv.FormatInt(now.UnixMilli(), 10),
		Name:     name,
		Duration: defaultDuration,
		Keyframes: []model.Keyframe{
			newKeyframe(0, defaultOpeningPrompt, model.TransitionFade, defaultTransitionSecs),
			newKeyframe(defaultDuration, defaultClosingPrompt, model.TransitionFade, defaultTransitionSecs),
		},
		FPS:        defaultFPS,
		Resolution: defaultResolution,
		CreatedAt:  now,
	}
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProject loads a project by id.
func (s *TimelineServiceImpl) GetProject(ctx context.Context, id string) (*model.TimelineProject, error) {
	return s.repo.Get(ctx, id)
}

// ListProjects returns all projects, newest first.
func (s *TimelineServiceImpl) ListProjects(ctx context.Context) ([]model.TimelineProject, error) {
	return s.repo.List(ctx)
}

// DeleteProject removes a project locally and from the mirror.
func (s *TimelineServiceImpl) DeleteProject(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.mirror.DeleteProject(ctx, id)
	return nil
}

// AddKeyframe appends a keyframe at the given time. Times are not checked
// against [0, duration] and duplicates are accepted; the stable re-sort keeps
// equal-time keyframes in insertion order.
func (s *TimelineServiceImpl) AddKeyframe(ctx context.Context, projectID string, at float64, prompt string) (*model.Keyframe, error) {
	if at < 0 {
		return nil, fmt.Errorf("validation: negative time: %w", errs.ErrInvalidArgument)
	}
	p, err := s.repo.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	kf := newKeyframe(at, prompt, model.TransitionFade, defaultTransitionSecs)
	p.Keyframes = append(p.Keyframes, kf)
	p.SortKeyframes()
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	return &kf, nil
}

// UpdateKeyframe merges the patch into the matching keyframe.
func (s *TimelineServiceImpl) UpdateKeyframe(ctx context.Context, projectID string, keyframeID uuid.UUID, patch model.KeyframePatch) error {
	p, err := s.repo.Get(ctx, projectID)
	if err != nil {
		return err
	}
	i := p.FindKeyframe(keyframeID)
	if i < 0 {
		return fmt.Errorf("keyframe %s: %w", keyframeID, errs.ErrNotFound)
	}
	kf := &p.Keyframes[i]
	if patch.Time != nil {
		kf.Time = *patch.Time
	}
	if patch.Prompt != nil {
		kf.Prompt = *patch.Prompt
	}
	if patch.TransitionType != nil {
		kf.TransitionType = *patch.TransitionType
	}
	if patch.TransitionDuration != nil {
		kf.TransitionDuration = *patch.TransitionDuration
	}
	p.SortKeyframes()
	return s.save(ctx, p)
}

// DeleteKeyframe removes the matching keyframe. A missing project is a
// silent no-op; boundary keyframes are not protected, callers guard against
// emptying a project.
func (s *TimelineServiceImpl) DeleteKeyframe(ctx context.Context, projectID string, keyframeID uuid.UUID) error {
	p, err := s.repo.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		return err
	}
	out := p.Keyframes[:0]
	for i := range p.Keyframes {
		if p.Keyframes[i].ID != keyframeID {
			out = append(out, p.Keyframes[i])
		}
	}
	p.Keyframes = out
	return s.save(ctx, p)
}

// Preview derives display segments; pure read, no side effects.
func (s *TimelineServiceImpl) Preview(ctx context.Context, projectID string) ([]timeline.Segment, error) {
	p, err := s.repo.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return timeline.Preview(p), nil
}

// ExportFrames derives one prompt per frame; pure read, no side effects.
func (s *TimelineServiceImpl) ExportFrames(ctx context.Context, projectID string) (timeline.FrameExport, error) {
	p, err := s.repo.Get(ctx, projectID)
	if err != nil {
		return timeline.FrameExport{}, err
	}
	return timeline.ExportFrames(p), nil
}

// GenerateAudioReactive keeps the boundary keyframes, drops the interior,
// and inserts one morph keyframe per detected beat strictly inside
// (0, duration), seeded with the opening keyframe's prompt.
func (s *TimelineServiceImpl) GenerateAudioReactive(ctx context.Context, projectID, audioURL string) error {
	p, err := s.repo.Get(ctx, projectID)
	if err != nil {
		return err
	}
	if len(p.Keyframes) < 2 {
		return fmt.Errorf("project needs boundary keyframes: %w", errs.ErrInvalidArgument)
	}
	analysis, err := s.analyzer.Analyze(ctx, audioURL)
	if err != nil {
		return err
	}

	first := p.Keyframes[0]
	last := p.Keyframes[len(p.Keyframes)-1]
	kfs := []model.Keyframe{first}
	for _, beat := range analysis.Beats {
		if beat <= 0 || beat >= p.Duration {
			continue
		}
		kfs = append(kfs, newKeyframe(beat, first.Prompt, model.TransitionMorph, beatTransitionSecs))
	}
	kfs = append(kfs, last)

	p.Keyframes = kfs
	p.SortKeyframes()
	p.AudioURL = audioURL
	p.AudioReactive = true
	return s.save(ctx, p)
}

func newKeyframe(at float64, prompt string, tr model.TransitionType, trSecs float64) model.Keyframe {
	return model.Keyframe{
		ID:                 uuid.Must(uuid.NewV4()),
		Time:               at,
		Prompt:             prompt,
		TransitionType:     tr,
		TransitionDuration: trSecs,
	}
}
