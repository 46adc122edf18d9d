// Package geo turns the backend's loosely-shaped boundary payloads into
// well-formed feature collections and merges them with per-country risk
// summaries into the overlay the map renders. Parsing is deliberately
// tolerant: the boundary source and the risk source arrive on independent
// timelines and with inconsistent envelopes, and a broken overlay must
// degrade to "no overlay" rather than take the rest of the view down.
package geo

import (
	"fmt"

	"github.com/go-faster/jx"

	"github.com/Ottocr/GEMS/pkg/domain"
)

// ParseOverlay decodes the payload of the operated-countries boundary
// endpoint. Accepted shapes:
//
//   - the endpoint envelope {"success": true, "geojson": {<collection>}}
//   - a bare feature collection
//
// Features missing their type/properties envelope but carrying raw
// coordinates are wrapped into well-formed Features with a MultiPolygon
// geometry. Any shape the decoder cannot make sense of yields an error;
// callers treat that as "no overlay".
func ParseOverlay(data []byte) (*domain.FeatureCollection, error) {
	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return nil, fmt.Errorf("overlay payload is not a JSON object")
	}

	var (
		inner       jx.Raw
		successSeen bool
		success     bool
		collection  = domain.FeatureCollection{Type: "FeatureCollection"}
		hasFeatures bool
	)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "geojson":
			raw, err := d.Raw()
			if err != nil {
				return err
			}
			inner = raw

			return nil
		case "success":
			b, err := d.Bool()
			if err != nil {
				return err
			}
			successSeen, success = true, b

			return nil
		case "type":
			s, err := d.Str()
			if err != nil {
				return err
			}
			collection.Type = s

			return nil
		case "features":
			hasFeatures = true

			return d.Arr(func(d *jx.Decoder) error {
				raw, err := d.Raw()
				if err != nil {
					return err
				}
				f, err := parseFeature(raw)
				if err != nil {
					return err
				}
				collection.Features = append(collection.Features, f)

				return nil
			})
		default:
			return d.Skip()
		}
	}); err != nil {
		return nil, fmt.Errorf("could not parse overlay: %w", err)
	}

	if successSeen && !success {
		return nil, fmt.Errorf("backend reported no boundary data")
	}
	if inner != nil {
		return ParseOverlay(inner)
	}
	if !hasFeatures {
		return nil, fmt.Errorf("overlay payload has no features")
	}

	return &collection, nil
}

// parseFeature decodes one feature, normalizing the two upstream shapes:
// a proper Feature with a geometry envelope, or a bare geometry carrying
// only coordinates.
func parseFeature(raw jx.Raw) (domain.Feature, error) {
	var (
		typ    string
		geom   *domain.Geometry
		coords jx.Raw
		props  domain.FeatureProperties
	)

	d := jx.DecodeBytes(raw)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "type":
			s, err := d.Str()
			if err != nil {
				return err
			}
			typ = s

			return nil
		case "geometry":
			if d.Next() == jx.Null {
				return d.Null()
			}
			g, err := parseGeometry(d)
			if err != nil {
				return err
			}
			geom = g

			return nil
		case "coordinates":
			raw, err := d.Raw()
			if err != nil {
				return err
			}
			coords = raw

			return nil
		case "properties":
			if d.Next() == jx.Null {
				return d.Null()
			}

			return parseProperties(d, &props)
		default:
			return d.Skip()
		}
	}); err != nil {
		return domain.Feature{}, fmt.Errorf("could not parse feature: %w", err)
	}

	// Bare geometry: no type envelope, raw rings at the top level. Wrap it
	// with the default geometry type.
	if typ == "" && coords != nil {
		return domain.Feature{
			Type: domain.FeatureType,
			Geometry: &domain.Geometry{
				Type:        domain.GeometryTypeMultiPolygon,
				Coordinates: append([]byte(nil), coords...),
			},
			Properties: props,
		}, nil
	}

	f := domain.Feature{Type: typ, Geometry: geom, Properties: props}
	if f.Type == "" {
		f.Type = domain.FeatureType
	}
	if f.Geometry != nil && f.Geometry.Type == "" {
		f.Geometry.Type = domain.GeometryTypeMultiPolygon
	}

	return f, nil
}

func parseGeometry(d *jx.Decoder) (*domain.Geometry, error) {
	var g domain.Geometry
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "type":
			s, err := d.Str()
			if err != nil {
				return err
			}
			g.Type = s

			return nil
		case "coordinates":
			raw, err := d.Raw()
			if err != nil {
				return err
			}
			g.Coordinates = append([]byte(nil), raw...)

			return nil
		default:
			return d.Skip()
		}
	}); err != nil {
		return nil, err
	}

	return &g, nil
}

func parseProperties(d *jx.Decoder, props *domain.FeatureProperties) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id":
			if d.Next() == jx.Null {
				return d.Null()
			}
			id, err := d.Int64()
			if err != nil {
				return err
			}
			props.CountryID = &id

			return nil
		case "name":
			s, err := d.Str()
			if err != nil {
				return err
			}
			props.Name = s

			return nil
		case "code":
			s, err := d.Str()
			if err != nil {
				return err
			}
			props.Code = s

			return nil
		case "avg_bta_score":
			if d.Next() == jx.Null {
				return d.Null()
			}
			f, err := d.Float64()
			if err != nil {
				return err
			}
			props.AvgBTAScore = &f

			return nil
		case "bta_scores":
			return d.Arr(func(d *jx.Decoder) error {
				var score domain.BTAScore
				if err := d.Obj(func(d *jx.Decoder, key string) error {
					switch key {
					case "risk_group":
						s, err := d.Str()
						if err != nil {
							return err
						}
						score.RiskGroup = s

						return nil
					case "bta_score":
						f, err := d.Float64()
						if err != nil {
							return err
						}
						score.Score = f

						return nil
					case "date_assessed":
						s, err := d.Str()
						if err != nil {
							return err
						}
						score.DateAssessed = s

						return nil
					default:
						return d.Skip()
					}
				}); err != nil {
					return err
				}
				props.BTAScores = append(props.BTAScores, score)

				return nil
			})
		default:
			return d.Skip()
		}
	})
}
