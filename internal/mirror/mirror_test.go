package mirror

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

type fakeProjectRepo struct {
	puts    []string
	deletes []string
	err     error
}

func (f *fakeProjectRepo) Put(_ context.Context, p *model.TimelineProject) error {
	f.puts = append(f.puts, p.ID)
	return f.err
}
func (f *fakeProjectRepo) Get(_ context.Context, _ string) (*model.TimelineProject, error) {
	return nil, errors.New("unused")
}
func (f *fakeProjectRepo) List(_ context.Context) ([]model.TimelineProject, error) {
	return nil, errors.New("unused")
}
func (f *fakeProjectRepo) Delete(_ context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return f.err
}

type fakeStyleRepo struct {
	puts []uuid.UUID
	err  error
}

func (f *fakeStyleRepo) Put(_ context.Context, s *model.StyleReference) error {
	f.puts = append(f.puts, s.ID)
	return f.err
}
func (f *fakeStyleRepo) Get(_ context.Context, _ uuid.UUID) (*model.StyleReference, error) {
	return nil, errors.New("unused")
}
func (f *fakeStyleRepo) List(_ context.Context, _ string) ([]model.StyleReference, error) {
	return nil, errors.New("unused")
}
func (f *fakeStyleRepo) Delete(_ context.Context, _ uuid.UUID) error { return f.err }

type fakePromptRepo struct {
	appends []uuid.UUID
	err     error
}

func (f *fakePromptRepo) Append(_ context.Context, e *model.PromptEntry) error {
	f.appends = append(f.appends, e.ID)
	return f.err
}
func (f *fakePromptRepo) List(_ context.Context, _ int) ([]model.PromptEntry, error) {
	return nil, errors.New("unused")
}

func TestNilMirror_IsDisabled(t *testing.T) {
	ctx := context.Background()
	var m *Mirror

	// must not panic, must not error
	m.SaveProject(ctx, &model.TimelineProject{ID: "1"})
	m.DeleteProject(ctx, "1")
	m.SaveStyle(ctx, &model.StyleReference{})
	m.DeleteStyle(ctx, uuid.Must(uuid.NewV4()))
	m.SavePrompt(ctx, &model.PromptEntry{})
	m.Close()
	require.NoError(t, m.Sync(ctx, nil, nil, nil))
}

func TestMirror_WriteFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	projects := &fakeProjectRepo{err: errors.New("network down")}
	m := newWithRepos(projects, &fakeStyleRepo{err: errors.New("network down")},
		&fakePromptRepo{err: errors.New("network down")}, zap.NewNop())

	// best-effort: no panic, no error surfaces
	m.SaveProject(ctx, &model.TimelineProject{ID: "p1"})
	m.DeleteProject(ctx, "p1")
	m.SaveStyle(ctx, &model.StyleReference{ID: uuid.Must(uuid.NewV4())})
	m.SavePrompt(ctx, &model.PromptEntry{ID: uuid.Must(uuid.NewV4())})

	require.Equal(t, []string{"p1"}, projects.puts)
	require.Equal(t, []string{"p1"}, projects.deletes)
}

func TestMirror_SyncPushesEverything(t *testing.T) {
	ctx := context.Background()
	projects := &fakeProjectRepo{}
	styles := &fakeStyleRepo{}
	prompts := &fakePromptRepo{}
	m := newWithRepos(projects, styles, prompts, zap.NewNop())

	sid := uuid.Must(uuid.NewV4())
	pid := uuid.Must(uuid.NewV4())
	err := m.Sync(ctx,
		[]model.TimelineProject{{ID: "a"}, {ID: "b"}},
		[]model.StyleReference{{ID: sid}},
		[]model.PromptEntry{{ID: pid}},
	)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b"}, projects.puts)
	require.Equal(t, []uuid.UUID{sid}, styles.puts)
	require.Equal(t, []uuid.UUID{pid}, prompts.appends)
}

func TestMirror_SyncReportsErrors(t *testing.T) {
	boom := errors.New("boom")
	m := newWithRepos(&fakeProjectRepo{err: boom}, &fakeStyleRepo{}, &fakePromptRepo{}, zap.NewNop())

	err := m.Sync(context.Background(), []model.TimelineProject{{ID: "a"}}, nil, nil)
	require.ErrorIs(t, err, boom)
}
