package domain

// DashboardData is the payload of the global dashboard domain.
type DashboardData struct {
	TotalCountries  int     `json:"totalCountries"`
	TotalAssets     int     `json:"totalAssets"`
	GlobalRiskScore float64 `json:"globalRiskScore"`

	Assets    []Asset   `json:"assets"`
	Countries []Country `json:"countries"`
}

// RiskView is the payload of the risk-management domain: the operated
// country list plus the assets and baseline assessments of the currently
// selected country. A selection change replaces the per-country part
// entirely; the country list survives across selections.
type RiskView struct {
	Countries []Country `json:"countries"`

	SelectedCountryID int64                      `json:"selectedCountryId,omitempty"`
	CountryAssets     []Asset                    `json:"countryAssets,omitempty"`
	BaselineThreats   []BaselineThreatAssessment `json:"baselineThreats,omitempty"`
}

// AssetView is the payload of the asset-detail domain: the asset list and,
// when an asset is opened, that asset with its barriers and risk matrix.
type AssetView struct {
	Assets []Asset `json:"assets,omitempty"`

	Current    *Asset          `json:"current,omitempty"`
	Barriers   []Barrier       `json:"barriers,omitempty"`
	RiskMatrix []RiskMatrixRow `json:"riskMatrix,omitempty"`
}
