package domain

import "encoding/json"

// GeometryTypeMultiPolygon is the default geometry type assumed when a
// boundary source ships bare coordinate rings without a type tag.
const GeometryTypeMultiPolygon = "MultiPolygon"

// FeatureType is the only feature type the renderer accepts.
const FeatureType = "Feature"

// Geometry is a GeoJSON geometry. Coordinates are kept as raw JSON: the
// overlay never inspects individual rings, it only carries them through to
// the renderer.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// FeatureProperties is the property bag of a boundary feature. The backend
// supplies the country id; code, name and scores are injected during
// enrichment.
type FeatureProperties struct {
	CountryID   *int64     `json:"countryId,omitempty"`
	Name        string     `json:"name,omitempty"`
	Code        string     `json:"code,omitempty"`
	AvgBTAScore *float64   `json:"avgBtaScore,omitempty"`
	BTAScores   []BTAScore `json:"btaScores,omitempty"`
}

// Feature is one country boundary polygon (or multi-polygon ring set).
// Invariant: every feature handed to the renderer has Type == FeatureType
// and a geometry with a non-empty type.
type Feature struct {
	Type       string            `json:"type"`
	Geometry   *Geometry         `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// FeatureCollection is a set of boundary features.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Clone returns a deep copy of the collection. Enrichment operates on a
// clone so the boundary source can be reused by the caller unchanged.
func (fc *FeatureCollection) Clone() *FeatureCollection {
	if fc == nil {
		return nil
	}

	out := &FeatureCollection{Type: fc.Type}
	if fc.Features != nil {
		out.Features = make([]Feature, len(fc.Features))
	}
	for i, f := range fc.Features {
		cp := Feature{Type: f.Type, Properties: f.Properties}
		if f.Geometry != nil {
			g := Geometry{Type: f.Geometry.Type}
			if f.Geometry.Coordinates != nil {
				g.Coordinates = append(json.RawMessage(nil), f.Geometry.Coordinates...)
			}
			cp.Geometry = &g
		}
		if f.Properties.CountryID != nil {
			id := *f.Properties.CountryID
			cp.Properties.CountryID = &id
		}
		if f.Properties.AvgBTAScore != nil {
			score := *f.Properties.AvgBTAScore
			cp.Properties.AvgBTAScore = &score
		}
		if f.Properties.BTAScores != nil {
			cp.Properties.BTAScores = append([]BTAScore(nil), f.Properties.BTAScores...)
		}
		out.Features[i] = cp
	}

	return out
}
