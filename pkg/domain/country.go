package domain

// BTAScore is one named risk-group sub-score of a country's baseline threat
// assessment set.
type BTAScore struct {
	// RiskGroup is the human label of the risk group (e.g. "Terrorism").
	RiskGroup string `json:"riskGroup"`
	// Score is the baseline threat score for that group.
	Score float64 `json:"score"`
	// DateAssessed is the backend-formatted assessment date, if provided.
	DateAssessed string `json:"dateAssessed,omitempty"`
}

// Country is an operated country together with its aggregate threat posture.
// Countries are only ever mutated by replacement: every successful fetch of
// a country-bearing domain produces a fresh value.
type Country struct {
	// ID is the backend identifier of the country.
	ID int64 `json:"id"`
	// Name is the country display name.
	Name string `json:"name"`
	// Code is the ISO-like country code (e.g. "NLD").
	Code string `json:"code"`

	// Latitude and Longitude are the country centroid in degrees.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// AvgBTAScore is the aggregate baseline threat score, zero when the
	// backend supplied no assessments.
	AvgBTAScore float64 `json:"avgBtaScore"`
	// BTAScores are the per-risk-group sub-scores, possibly empty.
	BTAScores []BTAScore `json:"btaScores,omitempty"`
}
