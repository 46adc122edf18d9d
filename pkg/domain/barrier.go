package domain

// BarrierEffectiveness is the per-risk-type effectiveness breakdown of a
// barrier.
type BarrierEffectiveness struct {
	RiskType    string  `json:"riskType"`
	Preventive  float64 `json:"preventive"`
	Detection   float64 `json:"detection"`
	Response    float64 `json:"response"`
	Reliability float64 `json:"reliability"`
	Coverage    float64 `json:"coverage"`
	Overall     float64 `json:"overall"`
}

// Barrier is a mitigating control attached to an asset, rated for
// effectiveness per risk type. Immutable within a single asset-detail fetch.
type Barrier struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`

	// Effectiveness maps a risk-type key to its score breakdown.
	Effectiveness map[string]BarrierEffectiveness `json:"effectiveness,omitempty"`
}

// BarrierImpact rates how badly a reported issue degrades a barrier.
type BarrierImpact string

const (
	BarrierImpactNone        BarrierImpact = "NO_IMPACT"
	BarrierImpactMinimal     BarrierImpact = "MINIMAL"
	BarrierImpactSubstantial BarrierImpact = "SUBSTANTIAL"
	BarrierImpactMajor       BarrierImpact = "MAJOR"
	BarrierImpactCompromised BarrierImpact = "COMPROMISED"
)
