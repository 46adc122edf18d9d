package orchestrator

import (
	"time"

	"github.com/Ottocr/GEMS/pkg/domain"
	"github.com/Ottocr/GEMS/pkg/gemsapi"
	"github.com/Ottocr/GEMS/pkg/risk"
)

// mapAsset turns a wire asset into a domain asset, computing its risk score
// on the way in. threatScores, when non-empty, take precedence over the
// criticality/vulnerability average.
func mapAsset(rec gemsapi.AssetRecord, countryName string, threatScores []float64) domain.Asset {
	score := risk.Score(rec.CriticalityScore, rec.VulnerabilityScore, threatScores...)

	return domain.Asset{
		ID:                 rec.ID,
		Name:               rec.Name,
		Description:        rec.Description,
		Latitude:           rec.Latitude,
		Longitude:          rec.Longitude,
		Type:               rec.AssetType,
		Country:            countryName,
		CriticalityScore:   rec.CriticalityScore,
		VulnerabilityScore: rec.VulnerabilityScore,
		RiskScore:          score,
		RiskLevel:          risk.Classify(score),
	}
}

func mapBTAScores(recs []gemsapi.BTAScoreRecord) []domain.BTAScore {
	if len(recs) == 0 {
		return nil
	}

	out := make([]domain.BTAScore, len(recs))
	for i, r := range recs {
		out[i] = domain.BTAScore{
			RiskGroup:    r.RiskGroup,
			Score:        r.BTAScore,
			DateAssessed: r.DateAssessed,
		}
	}

	return out
}

// mapDashboard maps the global summary. Dashboard assets are scored with
// their country's baseline assessments when the backend shipped any; that
// is the one place country-level threat data feeds asset scores.
func mapDashboard(res *gemsapi.DashboardResponse) domain.DashboardData {
	assets := make([]domain.Asset, 0, len(res.Assets))
	for _, rec := range res.Assets {
		var countryName string
		var threats []float64
		if rec.Country != nil {
			countryName = rec.Country.Name
			for _, bta := range rec.Country.BTAScores {
				threats = append(threats, bta.BTAScore)
			}
		}
		assets = append(assets, mapAsset(rec, countryName, threats))
	}

	countries := make([]domain.Country, 0, len(res.Countries))
	for _, rec := range res.Countries {
		countries = append(countries, domain.Country{
			ID:          rec.ID,
			Name:        rec.Name,
			Code:        rec.Code,
			Latitude:    rec.Latitude,
			Longitude:   rec.Longitude,
			AvgBTAScore: rec.AvgBTAScore,
			BTAScores:   mapBTAScores(rec.BTAScores),
		})
	}

	return domain.DashboardData{
		TotalCountries:  res.TotalCountries,
		TotalAssets:     len(assets),
		GlobalRiskScore: res.AvgGlobalRiskScore,
		Assets:          assets,
		Countries:       countries,
	}
}

// mapCountries maps the operated country list. Centroids come from the
// loosely-shaped geo_data point when present.
func mapCountries(recs []gemsapi.CountryRecord) []domain.Country {
	out := make([]domain.Country, 0, len(recs))
	for _, rec := range recs {
		lat, lon := rec.GeoData.PointLatLon()
		out = append(out, domain.Country{
			ID:        rec.ID,
			Name:      rec.Name,
			Code:      rec.Code,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return out
}

// mapCountryDetail composes the risk view for one selected country on top
// of the surviving country list. Assets here score from criticality and
// vulnerability only.
func mapCountryDetail(prev domain.RiskView, countryID int64, res *gemsapi.SecurityManagerResponse) domain.RiskView {
	var countryName string
	if res.SelectedCountry != nil {
		countryName = res.SelectedCountry.Name
	}

	assets := make([]domain.Asset, 0, len(res.Assets))
	for _, rec := range res.Assets {
		assets = append(assets, mapAsset(rec, countryName, nil))
	}

	riskTypes := make(map[int64]string, len(res.RiskTypes))
	for _, rt := range res.RiskTypes {
		riskTypes[rt.ID] = rt.Name
	}

	threats := make([]domain.BaselineThreatAssessment, 0, len(res.BTAList))
	for _, bta := range res.BTAList {
		name, ok := riskTypes[bta.RiskTypeID]
		if !ok {
			name = "Unknown"
		}
		lastUpdated := bta.DateAssessed
		if lastUpdated == "" {
			lastUpdated = time.Now().Format("2006-01-02")
		}
		threats = append(threats, domain.BaselineThreatAssessment{
			RiskTypeID:     bta.RiskTypeID,
			RiskType:       name,
			Score:          bta.BaselineScore,
			LastUpdated:    lastUpdated,
			ImpactOnAssets: bta.ImpactOnAssets,
			Notes:          bta.Notes,
		})
	}

	return domain.RiskView{
		Countries:         prev.Countries,
		SelectedCountryID: countryID,
		CountryAssets:     assets,
		BaselineThreats:   threats,
	}
}

func mapAssets(recs []gemsapi.AssetRecord) []domain.Asset {
	out := make([]domain.Asset, 0, len(recs))
	for _, rec := range recs {
		var countryName string
		if rec.Country != nil {
			countryName = rec.Country.Name
		}
		out = append(out, mapAsset(rec, countryName, nil))
	}

	return out
}

// mapAssetView composes the asset-detail view: the previously loaded asset
// list survives, the opened asset and its attachments are replaced.
func mapAssetView(prev domain.AssetView, res *gemsapi.AssetDetailResponse) domain.AssetView {
	var countryName string
	if res.Asset.Country != nil {
		countryName = res.Asset.Country.Name
	}
	current := mapAsset(res.Asset, countryName, nil)

	barriers := make([]domain.Barrier, 0, len(res.Barriers))
	for _, rec := range res.Barriers {
		b := domain.Barrier{
			ID:          rec.ID,
			Name:        rec.Name,
			Category:    rec.Category,
			Description: rec.Description,
		}
		if len(rec.EffectivenessScores) > 0 {
			b.Effectiveness = make(map[string]domain.BarrierEffectiveness, len(rec.EffectivenessScores))
			for key, eff := range rec.EffectivenessScores {
				b.Effectiveness[key] = domain.BarrierEffectiveness{
					RiskType:    eff.RiskType,
					Preventive:  eff.Preventive,
					Detection:   eff.Detection,
					Response:    eff.Response,
					Reliability: eff.Reliability,
					Coverage:    eff.Coverage,
					Overall:     eff.Overall,
				}
			}
		}
		barriers = append(barriers, b)
	}

	matrix := make([]domain.RiskMatrixRow, 0, len(res.RiskMatrices))
	for _, rec := range res.RiskMatrices {
		level := domain.RiskLevel(rec.Level)
		if rec.Level == "" {
			level = risk.Classify(rec.Score)
		}
		matrix = append(matrix, domain.RiskMatrixRow{
			RiskType: rec.RiskType,
			Score:    rec.Score,
			Level:    level,
		})
	}

	return domain.AssetView{
		Assets:     prev.Assets,
		Current:    &current,
		Barriers:   barriers,
		RiskMatrix: matrix,
	}
}
