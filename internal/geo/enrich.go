package geo

import (
	"github.com/Ottocr/GEMS/pkg/domain"
)

// Default scores and styling constants for the country overlay. A country
// with no assessed baseline renders as a mid-band score rather than an
// empty one.
const (
	DefaultScore = 5.0

	fillOpacityDefault  = 0.2
	fillOpacityHovered  = 0.3
	fillOpacitySelected = 0.4

	weightDefault     = 1
	weightHighlighted = 2
)

// Severity band colors, keyed by the renderer's palette names.
const (
	ColorError   = "error"   // score >= 8
	ColorWarning = "warning" // score >= 6
	ColorInfo    = "info"    // score >= 4
	ColorSuccess = "success" // everything below
)

// ColorPrimary is the boundary stroke color. The severity band only drives
// the fill; strokes stay on the theme primary.
const ColorPrimary = "primary"

// UIState captures the transient interaction state of the map: which
// country boundary the pointer is over and which one is selected. Codes
// are the ISO country codes carried in feature properties.
type UIState struct {
	SelectedCode string
	HoveredCode  string
}

// EventKind names a pointer interaction on a boundary feature.
type EventKind string

const (
	EventHover   EventKind = "hover"
	EventUnhover EventKind = "unhover"
	EventSelect  EventKind = "select"
)

// Event is one pointer interaction targeting the feature with Code.
type Event struct {
	Kind EventKind
	Code string
}

// Apply folds an interaction event into the UI state. Selecting an already
// selected country deselects it; unhover only clears the hover if it still
// targets the same feature.
func Apply(state UIState, ev Event) UIState {
	switch ev.Kind {
	case EventHover:
		state.HoveredCode = ev.Code
	case EventUnhover:
		if state.HoveredCode == ev.Code {
			state.HoveredCode = ""
		}
	case EventSelect:
		if state.SelectedCode == ev.Code {
			state.SelectedCode = ""
		} else {
			state.SelectedCode = ev.Code
		}
	}

	return state
}

// Style is the per-feature rendering directive derived from its score and
// the current interaction state.
type Style struct {
	Color       string  `json:"color"`
	Opacity     float64 `json:"opacity"`
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
	Weight      int     `json:"weight"`
}

// ColorFor maps a score onto its severity band.
func ColorFor(score float64) string {
	switch {
	case score >= 8:
		return ColorError
	case score >= 6:
		return ColorWarning
	case score >= 4:
		return ColorInfo
	default:
		return ColorSuccess
	}
}

// StyleFor computes the rendering style of one enriched feature. Selection
// takes precedence over hover for the fill opacity; either one thickens the
// boundary stroke.
func StyleFor(f domain.Feature, state UIState) Style {
	score := DefaultScore
	if f.Properties.AvgBTAScore != nil && *f.Properties.AvgBTAScore != 0 {
		score = *f.Properties.AvgBTAScore
	}

	selected := state.SelectedCode != "" && f.Properties.Code == state.SelectedCode
	hovered := state.HoveredCode != "" && f.Properties.Code == state.HoveredCode

	style := Style{
		Color:       ColorPrimary,
		Opacity:     1,
		FillColor:   ColorFor(score),
		FillOpacity: fillOpacityDefault,
		Weight:      weightDefault,
	}
	switch {
	case selected:
		style.FillOpacity = fillOpacitySelected
	case hovered:
		style.FillOpacity = fillOpacityHovered
	}
	if selected || hovered {
		style.Weight = weightHighlighted
	}

	return style
}

// Enrich joins country risk summaries onto boundary features, matching by
// the numeric country id in the feature properties. The input collection is
// never mutated; the returned collection is a deep copy. Features whose id
// matches no known country keep their parsed properties untouched.
func Enrich(boundaries *domain.FeatureCollection, countries map[int64]domain.Country) *domain.FeatureCollection {
	out := boundaries.Clone()
	if out == nil {
		return nil
	}

	for i := range out.Features {
		props := &out.Features[i].Properties
		if props.CountryID == nil {
			continue
		}
		country, ok := countries[*props.CountryID]
		if !ok {
			continue
		}

		props.Code = country.Code
		props.Name = country.Name

		score := country.AvgBTAScore
		if score == 0 {
			score = DefaultScore
		}
		props.AvgBTAScore = &score

		if len(country.BTAScores) > 0 {
			props.BTAScores = append([]domain.BTAScore(nil), country.BTAScores...)
		}
	}

	return out
}

// CountryIndex builds the id lookup Enrich expects from a country list.
func CountryIndex(countries []domain.Country) map[int64]domain.Country {
	out := make(map[int64]domain.Country, len(countries))
	for _, c := range countries {
		out[c.ID] = c
	}

	return out
}
