package domain

// Asset represents a single monitored facility. It is created when a fetch
// response is mapped into the domain and is replaced wholesale on every
// refetch of its owning data domain.
type Asset struct {
	// ID is the backend identifier of the asset.
	ID int64 `json:"id"`
	// Name is the display name of the asset.
	Name string `json:"name"`
	// Description is free-form text shown alongside the asset.
	Description string `json:"description"`

	// Latitude and Longitude are the asset position in degrees.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Type is the asset category label (e.g. "Office", "Refinery").
	Type string `json:"assetType"`
	// Country is the name of the country operating the asset.
	Country string `json:"country"`

	// CriticalityScore and VulnerabilityScore are provided by the backend.
	CriticalityScore   float64 `json:"criticalityScore"`
	VulnerabilityScore float64 `json:"vulnerabilityScore"`

	// RiskScore is computed on ingest, never provided by the backend.
	RiskScore float64 `json:"riskScore"`
	// RiskLevel is derived from RiskScore.
	RiskLevel RiskLevel `json:"riskLevel"`
}
