package orchestrator

import (
	"context"

	"github.com/Ottocr/GEMS/pkg/domain"
	"github.com/Ottocr/GEMS/pkg/gemsapi"
	"github.com/Ottocr/GEMS/pkg/store"
)

// Orchestrator sequences backend fetches and drives the three domain
// stores through their lifecycle. Readers get whole snapshots; all
// mutation goes through the Load/Clear operations.
type Orchestrator interface {
	// LoadDashboard populates the dashboard domain with the global summary.
	LoadDashboard(ctx context.Context) error
	// LoadCountries populates the risk-management domain with the operated
	// country list, leaving any per-country data alone.
	LoadCountries(ctx context.Context) error
	// LoadCountryDetail populates the risk-management domain with one
	// country's assets and baseline assessments. Each call supersedes the
	// previous selection; results never accumulate.
	LoadCountryDetail(ctx context.Context, countryID int64) error
	// LoadAssets populates the asset-detail domain with the flat asset list.
	LoadAssets(ctx context.Context) error
	// LoadAssetDetail populates the asset-detail domain with one asset,
	// its barriers and its risk matrix.
	LoadAssetDetail(ctx context.Context, assetID int64) error

	// ReportBarrierIssue files a barrier issue. Writes never touch the
	// stores; callers refresh explicitly afterwards.
	ReportBarrierIssue(ctx context.Context, report gemsapi.BarrierIssueReport) error
	// UpdateVulnerabilityAnswer submits a questionnaire answer. Same write
	// semantics as ReportBarrierIssue.
	UpdateVulnerabilityAnswer(ctx context.Context, assetID, questionID int64, answer string) error

	// ClearCountrySelection drops the risk-management snapshot when the
	// selected country is deselected.
	ClearCountrySelection()
	// ClearAssetView drops the asset-detail snapshot when navigating away.
	ClearAssetView()

	// Dashboard returns the current dashboard snapshot.
	Dashboard() store.Snapshot[domain.DashboardData]
	// RiskView returns the current risk-management snapshot.
	RiskView() store.Snapshot[domain.RiskView]
	// AssetView returns the current asset-detail snapshot.
	AssetView() store.Snapshot[domain.AssetView]
}
