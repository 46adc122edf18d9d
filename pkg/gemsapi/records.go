package gemsapi

import "encoding/json"

// The record types below mirror the backend's snake_case payloads. Fields
// are optionally present depending on the endpoint; mapping into domain
// entities happens in the orchestrator, never at use-sites.

// BTAScoreRecord is one baseline threat sub-score as shipped inside a
// country payload.
type BTAScoreRecord struct {
	RiskGroup    string  `json:"risk_group"`
	BTAScore     float64 `json:"bta_score"`
	DateAssessed string  `json:"date_assessed,omitempty"`
}

// GeoDataRecord is the loosely-shaped geometry the backend attaches to a
// country. Coordinates are kept raw: the field holds a bare point for some
// countries and full polygon rings for others.
type GeoDataRecord struct {
	Type        string          `json:"type,omitempty"`
	Coordinates json.RawMessage `json:"coordinates,omitempty"`
}

// PointLatLon interprets the geometry as a [lon, lat] point. Countries
// whose geo_data carries polygon rings instead report 0,0, the fallback
// for a missing centroid.
func (g *GeoDataRecord) PointLatLon() (lat, lon float64) {
	if g == nil || g.Coordinates == nil {
		return 0, 0
	}

	var pt []float64
	if err := json.Unmarshal(g.Coordinates, &pt); err != nil || len(pt) < 2 {
		return 0, 0
	}

	return pt[1], pt[0]
}

// CountryRecord is a country as returned by the dashboard and
// security-manager endpoints.
type CountryRecord struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Code      string  `json:"code,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`

	AvgBTAScore float64          `json:"avg_bta_score,omitempty"`
	BTAScores   []BTAScoreRecord `json:"bta_scores,omitempty"`
	GeoData     *GeoDataRecord   `json:"geo_data,omitempty"`
}

// AssetCountryRecord is the country summary nested inside dashboard asset
// payloads.
type AssetCountryRecord struct {
	Name        string           `json:"name"`
	AvgBTAScore float64          `json:"avg_bta_score,omitempty"`
	BTAScores   []BTAScoreRecord `json:"bta_scores,omitempty"`
}

// AssetRecord is an asset as shipped by any asset-bearing endpoint. The
// nested country is only present on the dashboard endpoint.
type AssetRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AssetType   string `json:"asset_type"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	CriticalityScore   float64 `json:"criticality_score"`
	VulnerabilityScore float64 `json:"vulnerability_score"`

	Country *AssetCountryRecord `json:"country,omitempty"`
}

// RiskTypeRecord is one entry of the risk-type catalog.
type RiskTypeRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// BTARecord is one baseline threat assessment of the selected country.
type BTARecord struct {
	RiskTypeID     int64   `json:"risk_type_id"`
	BaselineScore  float64 `json:"baseline_score"`
	DateAssessed   string  `json:"date_assessed,omitempty"`
	ImpactOnAssets bool    `json:"impact_on_assets,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// EffectivenessRecord is a barrier's per-risk-type score breakdown.
type EffectivenessRecord struct {
	RiskType    string  `json:"risk_type"`
	Preventive  float64 `json:"preventive"`
	Detection   float64 `json:"detection"`
	Response    float64 `json:"response"`
	Reliability float64 `json:"reliability"`
	Coverage    float64 `json:"coverage"`
	Overall     float64 `json:"overall"`
}

// BarrierRecord is a barrier as shipped by the asset-detail endpoint.
type BarrierRecord struct {
	ID                  int64                          `json:"id"`
	Name                string                         `json:"name"`
	Category            string                         `json:"category"`
	Description         string                         `json:"description,omitempty"`
	EffectivenessScores map[string]EffectivenessRecord `json:"effectiveness_scores,omitempty"`
}

// RiskMatrixRecord is one asset risk-matrix row.
type RiskMatrixRecord struct {
	RiskType string  `json:"risk_type"`
	Score    float64 `json:"score"`
	Level    string  `json:"level"`
}

// DashboardResponse is the payload of GET /api/dashboard/data/.
type DashboardResponse struct {
	TotalCountries     int     `json:"total_countries"`
	AvgGlobalRiskScore float64 `json:"avg_global_risk_score"`

	Countries []CountryRecord  `json:"countries"`
	Assets    []AssetRecord    `json:"assets"`
	RiskTypes []RiskTypeRecord `json:"risk_types,omitempty"`
}

// SecurityManagerResponse is the payload of GET /api/security-manager/data/,
// with or without a country_id scope.
type SecurityManagerResponse struct {
	Countries       []CountryRecord  `json:"countries"`
	SelectedCountry *CountryRecord   `json:"selected_country,omitempty"`
	Assets          []AssetRecord    `json:"assets,omitempty"`
	BTAList         []BTARecord      `json:"bta_list,omitempty"`
	RiskTypes       []RiskTypeRecord `json:"risk_types,omitempty"`
}

// AssetDetailResponse is the payload of GET /api/assets/{id}/.
type AssetDetailResponse struct {
	Asset        AssetRecord        `json:"asset"`
	Barriers     []BarrierRecord    `json:"barriers,omitempty"`
	RiskMatrices []RiskMatrixRecord `json:"risk_matrices,omitempty"`
}
