// Package model defines domain entities used by services and repositories.
package model

import (
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
)

// TransitionType describes how one keyframe hands over to the next.
type TransitionType string

// Supported transitions.
const (
	TransitionFade     TransitionType = "fade"
	TransitionMorph    TransitionType = "morph"
	TransitionZoom     TransitionType = "zoom"
	TransitionPan      TransitionType = "pan"
	TransitionDissolve TransitionType = "dissolve"
)

// FPS is the frame rate of a timeline project.
type FPS int

// Supported frame rates.
const (
	FPS24 FPS = 24
	FPS30 FPS = 30
	FPS60 FPS = 60
)

// Resolution is the output resolution of a timeline project.
type Resolution string

// Supported resolutions.
const (
	Resolution720p  Resolution = "720p"
	Resolution1080p Resolution = "1080p"
	Resolution4K    Resolution = "4K"
)

// Keyframe anchors one prompt at one point on a project timeline.
type Keyframe struct {
	ID                 uuid.UUID      `json:"id"`                 // PK within the owning project
	Time               float64        `json:"time"`               // seconds, >= 0
	Prompt             string         `json:"prompt"`             // generation prompt active from this point
	TransitionType     TransitionType `json:"transitionType"`     // handover into the next keyframe
	TransitionDuration float64        `json:"transitionDuration"` // seconds, >= 0
}

// TimelineProject is the aggregate owning an ordered set of keyframes plus
// playback metadata. Keyframes are embedded: deleting the project drops them.
type TimelineProject struct {
	ID            string     `json:"id"` // derived from creation time
	Name          string     `json:"name"`
	Duration      float64    `json:"duration"` // seconds, > 0
	Keyframes     []Keyframe `json:"keyframes"`
	AudioURL      string     `json:"audioUrl,omitempty"` // empty when no audio is linked
	AudioReactive bool       `json:"audioReactive"`
	FPS           FPS        `json:"fps"`
	Resolution    Resolution `json:"resolution"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"` // refreshed on every save
}

// SortKeyframes restores the ordering invariant: keyframes ascending by time.
// The sort is stable so keyframes sharing a timestamp keep insertion order.
func (p *TimelineProject) SortKeyframes() {
	sort.SliceStable(p.Keyframes, func(i, j int) bool {
		return p.Keyframes[i].Time < p.Keyframes[j].Time
	})
}

// FindKeyframe returns the index of the keyframe with the given id, or -1.
func (p *TimelineProject) FindKeyframe(id uuid.UUID) int {
	for i := range p.Keyframes {
		if p.Keyframes[i].ID == id {
			return i
		}
	}
	return -1
}

// KeyframePatch carries a partial keyframe update; nil fields are left as-is.
type KeyframePatch struct {
	Time               *float64
	Prompt             *string
	TransitionType     *TransitionType
	TransitionDuration *float64
}

// StyleFeatures is the extracted visual signature of a reference image.
// It is also the shape of a mix result, which is derived and never persisted.
type StyleFeatures struct {
	ColorPalette []string `json:"colorPalette"` // ordered, most dominant first
	Lighting     string   `json:"lighting"`
	Composition  string   `json:"composition"`
	Mood         string   `json:"mood"`
	ArtStyle     string   `json:"artStyle"`
}

// StyleReference is a named bundle of extracted style attributes.
// Immutable once created except via explicit delete.
type StyleReference struct {
	ID        uuid.UUID     `json:"id"`
	UserID    string        `json:"userId"`
	Name      string        `json:"name"`
	ImageURL  string        `json:"imageUrl"`
	Features  StyleFeatures `json:"extractedFeatures"`
	CreatedAt time.Time     `json:"createdAt"`
}

// GenerationKind distinguishes what the mock backend pretends to produce.
type GenerationKind string

// Supported generation kinds.
const (
	GenerationImage  GenerationKind = "image"
	GenerationVideo  GenerationKind = "video"
	GenerationSpeech GenerationKind = "speech"
)

// PromptEntry records one generation request and its (placeholder) result.
type PromptEntry struct {
	ID        uuid.UUID      `json:"id"`
	Prompt    string         `json:"prompt"`
	Kind      GenerationKind `json:"kind"`
	ResultURL string         `json:"resultUrl"`
	CreatedAt time.Time      `json:"createdAt"`
}
