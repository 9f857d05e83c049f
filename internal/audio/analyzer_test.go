package audio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockAnalyzer_Deterministic(t *testing.T) {
	ctx := context.Background()
	a := NewMockAnalyzer()

	first, err := a.Analyze(ctx, "https://example.com/track.mp3")
	require.NoError(t, err)
	second, err := a.Analyze(ctx, "https://example.com/other.mp3")
	require.NoError(t, err)
	require.Equal(t, first, second, "mock ignores input")
}

func TestMockAnalyzer_Shape(t *testing.T) {
	a := NewMockAnalyzer()
	res, err := a.Analyze(context.Background(), "x")
	require.NoError(t, err)

	require.Equal(t, 120.0, res.Tempo)
	require.Len(t, res.Beats, 10)
	for i, b := range res.Beats {
		require.Equal(t, float64(i)*0.5, b)
	}
	require.NotEmpty(t, res.Energy)
	for _, e := range res.Energy {
		require.GreaterOrEqual(t, e, 0.0)
		require.LessOrEqual(t, e, 1.0)
	}
}

func TestNewAnalyzer_Variants(t *testing.T) {
	a, err := NewAnalyzer("")
	require.NoError(t, err)
	require.IsType(t, &MockAnalyzer{}, a)

	_, err = NewAnalyzer("onset")
	require.Error(t, err)

	_, err = NewAnalyzer("bogus")
	require.Error(t, err)
}
