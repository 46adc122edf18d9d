// Package risk computes bounded asset risk scores and maps them onto the
// discrete risk bands used for color-coding and filtering.
package risk

import "github.com/Ottocr/GEMS/pkg/domain"

// Score bounds for the criticality/vulnerability branch.
const (
	MinScore = 1.0
	MaxScore = 10.0
)

// Score derives a numeric risk score for an asset.
//
// When one or more baseline threat scores are supplied (country-level
// assessments), the result is their exact arithmetic mean. That branch is
// intentionally left unclamped: downstream consumers rely on the historical
// behavior of country-driven scores escaping the [1,10] band when the
// assessments do.
//
// Without threat scores the result is the criticality/vulnerability average
// clamped into [MinScore, MaxScore].
func Score(criticality, vulnerability float64, threatScores ...float64) float64 {
	if len(threatScores) > 0 {
		var sum float64
		for _, s := range threatScores {
			sum += s
		}

		return sum / float64(len(threatScores))
	}

	return Clamp((criticality+vulnerability)/2, MinScore, MaxScore)
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Classify maps a score onto its risk band. The partition is exact and must
// not drift: <=3 LOW, <=5 MEDIUM, <=8 HIGH, above CRITICAL. NaN fails every
// ordered comparison, so the first case is written as !(score > 3) to land
// malformed scores in the lowest band rather than in CRITICAL.
func Classify(score float64) domain.RiskLevel {
	switch {
	case !(score > 3): // true for score <= 3 and for NaN
		return domain.RiskLevelLow
	case score <= 5:
		return domain.RiskLevelMedium
	case score <= 8:
		return domain.RiskLevelHigh
	default:
		return domain.RiskLevelCritical
	}
}
