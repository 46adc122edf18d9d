package domain

// RiskLevel is a discrete risk band derived from a numeric score.
type RiskLevel string

const (
	// RiskLevelLow covers scores up to and including 3.
	RiskLevelLow RiskLevel = "LOW"
	// RiskLevelMedium covers scores above 3 up to and including 5.
	RiskLevelMedium RiskLevel = "MEDIUM"
	// RiskLevelHigh covers scores above 5 up to and including 8.
	RiskLevelHigh RiskLevel = "HIGH"
	// RiskLevelCritical covers scores above 8.
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// RiskType is one entry of the backend's risk-type catalog, used to resolve
// the human label of a baseline threat assessment.
type RiskType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// BaselineThreatAssessment is a per-country, per-risk-type ambient threat
// score. It exists only inside a risk-management snapshot.
type BaselineThreatAssessment struct {
	// RiskTypeID identifies the assessed risk type.
	RiskTypeID int64 `json:"riskTypeId"`
	// RiskType is the label resolved through the risk-type catalog;
	// "Unknown" when the catalog has no entry for RiskTypeID.
	RiskType string `json:"riskType"`
	// Score is the baseline threat score.
	Score float64 `json:"score"`
	// LastUpdated is the date the assessment was made.
	LastUpdated string `json:"lastUpdated"`
	// ImpactOnAssets reports whether the threat propagates into asset
	// risk scoring.
	ImpactOnAssets bool `json:"impactOnAssets"`
	// Notes is optional narrative text.
	Notes string `json:"notes,omitempty"`
}

// RiskMatrixRow is one row of an asset's risk matrix: a risk type, its score
// and the band the score falls into.
type RiskMatrixRow struct {
	RiskType string    `json:"riskType"`
	Score    float64   `json:"score"`
	Level    RiskLevel `json:"level"`
}
