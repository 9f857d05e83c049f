// Package audio exposes beat detection behind a small interface. Only the
// mock detector is implemented; a real one must preserve the output shape.
package audio

import (
	"context"
	"fmt"
	"math"
)

// Analysis is the beat-detection result consumed by the audio-reactive
// keyframe generator.
type Analysis struct {
	Beats  []float64 // beat timestamps, seconds
	Tempo  float64   // BPM
	Energy []float64 // [0,1] samples over the analyzed window
}

// Analyzer turns an audio reference into an Analysis.
type Analyzer interface {
	Analyze(ctx context.Context, audioURL string) (*Analysis, error)
}

// NewAnalyzer creates an analyzer based on the specified variant.
func NewAnalyzer(variant string) (Analyzer, error) {
	switch variant {
	case "mock", "":
		return NewMockAnalyzer(), nil
	case "onset":
		return nil, fmt.Errorf("onset detector not yet implemented")
	default:
		return nil, fmt.Errorf("unknown analyzer variant: %s", variant)
	}
}

// Mock detector parameters: a steady 120 BPM click and a sine energy curve.
const (
	mockTempo         = 120.0
	mockBeatInterval  = 0.5
	mockBeatCount     = 10
	mockEnergySamples = 50
)

// MockAnalyzer returns the same deterministic analysis for every input,
// standing in for a real beat-detection backend.
type MockAnalyzer struct{}

// NewMockAnalyzer constructs the mock analyzer.
func NewMockAnalyzer() *MockAnalyzer { return &MockAnalyzer{} }

// Analyze ignores the audio content and fabricates a 120 BPM click track.
func (a *MockAnalyzer) Analyze(_ context.Context, _ string) (*Analysis, error) {
	beats := make([]float64, 0, mockBeatCount)
	for i := 0; i < mockBeatCount; i++ {
		beats = append(beats, float64(i)*mockBeatInterval)
	}
	energy := make([]float64, 0, mockEnergySamples)
	for i := 0; i < mockEnergySamples; i++ {
		phase := 2 * math.Pi * float64(i) / mockEnergySamples
		energy = append(energy, (math.Sin(phase)+1)/2)
	}
	return &Analysis{Beats: beats, Tempo: mockTempo, Energy: energy}, nil
}
