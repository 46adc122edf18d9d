package geo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ottocr/GEMS/internal/geo"
	"github.com/Ottocr/GEMS/pkg/domain"
)

func TestParseOverlayEnvelope(t *testing.T) {
	payload := []byte(`{
		"success": true,
		"geojson": {
			"type": "FeatureCollection",
			"features": [
				{
					"type": "Feature",
					"geometry": {"type": "MultiPolygon", "coordinates": [[[[0,0],[1,0],[1,1],[0,0]]]]},
					"properties": {"id": 7, "name": "Jordan", "code": "JO"}
				}
			]
		}
	}`)

	fc, err := geo.ParseOverlay(payload)
	require.NoError(t, err)
	require.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)

	f := fc.Features[0]
	require.Equal(t, domain.FeatureType, f.Type)
	require.NotNil(t, f.Geometry)
	require.Equal(t, domain.GeometryTypeMultiPolygon, f.Geometry.Type)
	require.NotNil(t, f.Properties.CountryID)
	require.EqualValues(t, 7, *f.Properties.CountryID)
	require.Equal(t, "Jordan", f.Properties.Name)
	require.Equal(t, "JO", f.Properties.Code)
}

func TestParseOverlayBareCollection(t *testing.T) {
	payload := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,1],[0,1],[0,0]]]}, "properties": {"id": 1}}
		]
	}`)

	fc, err := geo.ParseOverlay(payload)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	require.Equal(t, "Polygon", fc.Features[0].Geometry.Type)
}

func TestParseOverlayWrapsBareGeometry(t *testing.T) {
	payload := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"coordinates": [[[[10,20],[30,40],[50,60],[10,20]]]], "properties": {"id": 3}}
		]
	}`)

	fc, err := geo.ParseOverlay(payload)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	f := fc.Features[0]
	require.Equal(t, domain.FeatureType, f.Type)
	require.NotNil(t, f.Geometry)
	require.Equal(t, domain.GeometryTypeMultiPolygon, f.Geometry.Type)
	require.JSONEq(t, `[[[[10,20],[30,40],[50,60],[10,20]]]]`, string(f.Geometry.Coordinates))
	require.EqualValues(t, 3, *f.Properties.CountryID)
}

func TestParseOverlayProperties(t *testing.T) {
	payload := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{
				"type": "Feature",
				"geometry": {"type": "MultiPolygon", "coordinates": []},
				"properties": {
					"id": 12,
					"name": "Iraq",
					"code": "IQ",
					"avg_bta_score": 7.5,
					"bta_scores": [
						{"risk_group": "Terrorism", "bta_score": 9, "date_assessed": "2026-05-01"},
						{"risk_group": "Crime", "bta_score": 6, "date_assessed": "2026-04-12"}
					]
				}
			}
		]
	}`)

	fc, err := geo.ParseOverlay(payload)
	require.NoError(t, err)

	props := fc.Features[0].Properties
	require.NotNil(t, props.AvgBTAScore)
	require.InDelta(t, 7.5, *props.AvgBTAScore, 1e-9)
	require.Len(t, props.BTAScores, 2)
	require.Equal(t, "Terrorism", props.BTAScores[0].RiskGroup)
	require.InDelta(t, 9, props.BTAScores[0].Score, 1e-9)
	require.Equal(t, "2026-04-12", props.BTAScores[1].DateAssessed)
}

func TestParseOverlayFailures(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{name: "not JSON", payload: `<html>boom</html>`},
		{name: "not an object", payload: `[1,2,3]`},
		{name: "backend failure flag", payload: `{"success": false, "geojson": {"type": "FeatureCollection", "features": []}}`},
		{name: "no features", payload: `{"type": "FeatureCollection"}`},
		{name: "truncated", payload: `{"type": "FeatureCollection", "features": [{"type": "Fea`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fc, err := geo.ParseOverlay([]byte(testCase.payload))
			require.Error(t, err)
			require.Nil(t, fc)
		})
	}
}
