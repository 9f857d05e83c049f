package postgres

import (
	"encoding/json"

	"github.com/gofrs/uuid/v5"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

// Row documents use snake_case field names, matching the hosted-database
// column conventions. Translation to and from the camelCase domain shapes is
// done here, exhaustively typed, with explicit defaults for NULL columns.

type keyframeRow struct {
	ID                 string  `json:"id"`
	Time               float64 `json:"time"`
	Prompt             string  `json:"prompt"`
	TransitionType     string  `json:"transition_type"`
	TransitionDuration float64 `json:"transition_duration"`
}

// keyframesToJSON serializes a keyframe list into the jsonb document stored
// in the timeline_projects.keyframes column.
func keyframesToJSON(kfs []model.Keyframe) ([]byte, error) {
	rows := make([]keyframeRow, 0, len(kfs))
	for _, k := range kfs {
		rows = append(rows, keyframeRow{
			ID:                 k.ID.String(),
			Time:               k.Time,
			Prompt:             k.Prompt,
			TransitionType:     string(k.TransitionType),
			TransitionDuration: k.TransitionDuration,
		})
	}
	return json.Marshal(rows)
}

// keyframesFromJSON parses the jsonb document back into domain keyframes.
// A NULL or empty document yields an empty list. Unparseable keyframe ids
// come back as the nil UUID rather than failing the whole row.
func keyframesFromJSON(doc []byte) ([]model.Keyframe, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	var rows []keyframeRow
	if err := json.Unmarshal(doc, &rows); err != nil {
		return nil, err
	}
	out := make([]model.Keyframe, 0, len(rows))
	for _, r := range rows {
		k := model.Keyframe{
			Time:               r.Time,
			Prompt:             r.Prompt,
			TransitionType:     model.TransitionType(r.TransitionType),
			TransitionDuration: r.TransitionDuration,
		}
		k.ID, _ = parseUUID(r.ID)
		out = append(out, k)
	}
	return out, nil
}

// parseUUID is a tolerant uuid parse: bad input yields the nil UUID.
func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.FromString(s)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// nullableText maps an empty string to SQL NULL.
func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// textOrEmpty maps SQL NULL to the empty string.
func textOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// paletteOrEmpty maps a NULL text[] column to an empty palette.
func paletteOrEmpty(colors []string) []string {
	if colors == nil {
		return []string{}
	}
	return colors
}
