// Package gemsapi defines the interface and wire types used to consume the
// GEMS backend API. The concrete HTTP implementation lives in the gemshttp
// subpackage; consumers depend on the Client interface so fetch logic can
// be tested against mocks.
package gemsapi

import (
	"context"

	"github.com/Ottocr/GEMS/pkg/domain"
)

// Client is the abstraction over the GEMS backend.
//
//go:generate mockgen -package mockgemsapi -source=interface.go -destination=mock/mockgemsapi.go *
type Client interface {
	// Login exchanges credentials for an API token.
	Login(ctx context.Context, username, password string) (string, error)

	// DashboardData fetches the global country/asset summary.
	DashboardData(ctx context.Context) (*DashboardResponse, error)
	// SecurityManagerData fetches the operated country list; with a
	// non-zero countryID it additionally scopes assets and baseline
	// assessments to that country.
	SecurityManagerData(ctx context.Context, countryID int64) (*SecurityManagerResponse, error)
	// Assets fetches the flat asset list.
	Assets(ctx context.Context) ([]AssetRecord, error)
	// AssetDetail fetches one asset with its barriers and risk matrix.
	AssetDetail(ctx context.Context, assetID int64) (*AssetDetailResponse, error)

	// ReportBarrierIssue files an issue against a barrier.
	ReportBarrierIssue(ctx context.Context, report BarrierIssueReport) error
	// UpdateVulnerabilityAnswer submits a vulnerability questionnaire answer.
	UpdateVulnerabilityAnswer(ctx context.Context, assetID, questionID int64, answer string) error

	// OperatedCountriesGeoJSON fetches the raw boundary payload for all
	// operated countries. The bytes are handed to the geo package, which
	// owns the tolerant parsing of the inconsistent upstream shapes.
	OperatedCountriesGeoJSON(ctx context.Context) ([]byte, error)
}

// BarrierIssueReport is the write payload of ReportBarrierIssue.
type BarrierIssueReport struct {
	AssetID      int64                `json:"asset_id"`
	BarrierID    int64                `json:"barrier_id"`
	Description  string               `json:"description"`
	ImpactRating domain.BarrierImpact `json:"impact_rating"`
}
