package orchestrator_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Ottocr/GEMS/internal/orchestrator"
	"github.com/Ottocr/GEMS/pkg/domain"
	"github.com/Ottocr/GEMS/pkg/gemsapi"
	mockgemsapi "github.com/Ottocr/GEMS/pkg/gemsapi/mock"
	"github.com/Ottocr/GEMS/pkg/logger"
	"github.com/Ottocr/GEMS/pkg/serrors"
	"github.com/Ottocr/GEMS/pkg/store"
)

func newTestOrchestrator(t *testing.T) (*mockgemsapi.MockClient, orchestrator.Orchestrator) {
	t.Helper()
	logger.Setup(logger.DevelopmentEnvironment)

	ctrl := gomock.NewController(t)
	client := mockgemsapi.NewMockClient(ctrl)

	return client, orchestrator.New(client, nil)
}

func dashboardResponse() *gemsapi.DashboardResponse {
	return &gemsapi.DashboardResponse{
		TotalCountries:     2,
		AvgGlobalRiskScore: 6.1,
		Countries: []gemsapi.CountryRecord{
			{ID: 7, Name: "Iraq", Code: "IRQ", AvgBTAScore: 8.5},
			{ID: 12, Name: "Nigeria", Code: "NGA", AvgBTAScore: 6.0},
		},
		Assets: []gemsapi.AssetRecord{
			{
				ID: 1, Name: "HQ", AssetType: "Office",
				CriticalityScore: 8, VulnerabilityScore: 6,
				Country: &gemsapi.AssetCountryRecord{Name: "Netherlands"},
			},
			{
				ID: 2, Name: "Depot", AssetType: "Storage",
				CriticalityScore: 2, VulnerabilityScore: 2,
				Country: &gemsapi.AssetCountryRecord{
					Name: "Iraq",
					BTAScores: []gemsapi.BTAScoreRecord{
						{RiskGroup: "Terrorism", BTAScore: 9},
						{RiskGroup: "Crime", BTAScore: 7},
					},
				},
			},
		},
	}
}

func TestLoadDashboard_MapsAndScores(t *testing.T) {
	client, o := newTestOrchestrator(t)
	client.EXPECT().DashboardData(gomock.Any()).Return(dashboardResponse(), nil)

	require.NoError(t, o.LoadDashboard(context.Background()))

	snap := o.Dashboard()
	require.Equal(t, store.StatusReady, snap.Status)
	require.Equal(t, 2, snap.Data.TotalCountries)
	require.Equal(t, 2, snap.Data.TotalAssets)
	require.InDelta(t, 6.1, snap.Data.GlobalRiskScore, 1e-9)

	// Without country assessments the score is the clamped c/v average.
	hq := snap.Data.Assets[0]
	require.InDelta(t, 7.0, hq.RiskScore, 1e-9)
	require.Equal(t, domain.RiskLevelHigh, hq.RiskLevel)
	require.Equal(t, "Netherlands", hq.Country)

	// With assessments the score is their mean, c/v play no role.
	depot := snap.Data.Assets[1]
	require.InDelta(t, 8.0, depot.RiskScore, 1e-9)
	require.Equal(t, domain.RiskLevelHigh, depot.RiskLevel)

	require.Equal(t, "IRQ", snap.Data.Countries[0].Code)
}

func TestLoadDashboard_FailureKeepsPriorTotals(t *testing.T) {
	client, o := newTestOrchestrator(t)

	client.EXPECT().DashboardData(gomock.Any()).Return(dashboardResponse(), nil)
	require.NoError(t, o.LoadDashboard(context.Background()))

	client.EXPECT().DashboardData(gomock.Any()).Return(nil, errors.New("backend unreachable"))
	require.Error(t, o.LoadDashboard(context.Background()))

	snap := o.Dashboard()
	require.Equal(t, store.StatusFailed, snap.Status)
	require.NotEmpty(t, snap.Err)
	// Stale data remains visible.
	require.Equal(t, 2, snap.Data.TotalCountries)
	require.Equal(t, 2, snap.Data.TotalAssets)
}

func TestLoadCountryDetail_SupersedesPreviousSelection(t *testing.T) {
	client, o := newTestOrchestrator(t)
	ctx := context.Background()

	client.EXPECT().SecurityManagerData(gomock.Any(), int64(0)).Return(&gemsapi.SecurityManagerResponse{
		Countries: []gemsapi.CountryRecord{
			{ID: 7, Name: "Iraq", Code: "IRQ"},
			{ID: 12, Name: "Nigeria", Code: "NGA"},
		},
	}, nil)
	require.NoError(t, o.LoadCountries(ctx))

	client.EXPECT().SecurityManagerData(gomock.Any(), int64(7)).Return(&gemsapi.SecurityManagerResponse{
		SelectedCountry: &gemsapi.CountryRecord{ID: 7, Name: "Iraq"},
		Assets: []gemsapi.AssetRecord{
			{ID: 10, Name: "Refinery", CriticalityScore: 9, VulnerabilityScore: 9},
		},
		BTAList:   []gemsapi.BTARecord{{RiskTypeID: 1, BaselineScore: 8}},
		RiskTypes: []gemsapi.RiskTypeRecord{{ID: 1, Name: "Terrorism"}},
	}, nil)
	require.NoError(t, o.LoadCountryDetail(ctx, 7))

	client.EXPECT().SecurityManagerData(gomock.Any(), int64(12)).Return(&gemsapi.SecurityManagerResponse{
		SelectedCountry: &gemsapi.CountryRecord{ID: 12, Name: "Nigeria"},
		Assets: []gemsapi.AssetRecord{
			{ID: 20, Name: "Terminal", CriticalityScore: 4, VulnerabilityScore: 4},
		},
		BTAList:   []gemsapi.BTARecord{{RiskTypeID: 2, BaselineScore: 6}},
		RiskTypes: []gemsapi.RiskTypeRecord{{ID: 2, Name: "Piracy"}},
	}, nil)
	require.NoError(t, o.LoadCountryDetail(ctx, 12))

	snap := o.RiskView()
	require.Equal(t, store.StatusReady, snap.Status)
	require.Equal(t, int64(12), snap.Data.SelectedCountryID)
	// Only country 12's data, never a union across selections.
	require.Len(t, snap.Data.CountryAssets, 1)
	require.Equal(t, int64(20), snap.Data.CountryAssets[0].ID)
	require.Equal(t, "Nigeria", snap.Data.CountryAssets[0].Country)
	require.Len(t, snap.Data.BaselineThreats, 1)
	require.Equal(t, "Piracy", snap.Data.BaselineThreats[0].RiskType)
	// The country list survives selection changes.
	require.Len(t, snap.Data.Countries, 2)
}

func TestLoadCountryDetail_UnknownRiskType(t *testing.T) {
	client, o := newTestOrchestrator(t)

	client.EXPECT().SecurityManagerData(gomock.Any(), int64(7)).Return(&gemsapi.SecurityManagerResponse{
		SelectedCountry: &gemsapi.CountryRecord{ID: 7, Name: "Iraq"},
		BTAList:         []gemsapi.BTARecord{{RiskTypeID: 99, BaselineScore: 5}},
	}, nil)
	require.NoError(t, o.LoadCountryDetail(context.Background(), 7))

	threats := o.RiskView().Data.BaselineThreats
	require.Len(t, threats, 1)
	require.Equal(t, "Unknown", threats[0].RiskType)
	require.NotEmpty(t, threats[0].LastUpdated)
}

func TestLoad_RejectedWhilePending(t *testing.T) {
	client, o := newTestOrchestrator(t)

	release := make(chan struct{})
	started := make(chan struct{})
	client.EXPECT().DashboardData(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (*gemsapi.DashboardResponse, error) {
			close(started)
			<-release

			return dashboardResponse(), nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		require.NoError(t, o.LoadDashboard(context.Background()))
	}()

	<-started
	// Second fetch for the same domain while one is pending is rejected,
	// never raced.
	err := o.LoadDashboard(context.Background())
	require.ErrorIs(t, err, serrors.ErrConflict)

	close(release)
	wg.Wait()
	require.Equal(t, store.StatusReady, o.Dashboard().Status)
}

func TestLoad_AuthExpiryBypassesFailedState(t *testing.T) {
	client, o := newTestOrchestrator(t)

	client.EXPECT().DashboardData(gomock.Any()).Return(dashboardResponse(), nil)
	require.NoError(t, o.LoadDashboard(context.Background()))

	client.EXPECT().DashboardData(gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnauthorized, "authentication expired"))

	err := o.LoadDashboard(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	// Not conflated with a domain failure: the store resets instead of
	// entering failed.
	snap := o.Dashboard()
	require.Equal(t, store.StatusIdle, snap.Status)
	require.Empty(t, snap.Err)
	require.Zero(t, snap.Data.TotalAssets)
}

func TestLoadAssetDetail_MapsBarriersAndMatrix(t *testing.T) {
	client, o := newTestOrchestrator(t)

	client.EXPECT().Assets(gomock.Any()).Return([]gemsapi.AssetRecord{
		{ID: 4, Name: "HQ", CriticalityScore: 5, VulnerabilityScore: 5},
	}, nil)
	require.NoError(t, o.LoadAssets(context.Background()))

	client.EXPECT().AssetDetail(gomock.Any(), int64(4)).Return(&gemsapi.AssetDetailResponse{
		Asset: gemsapi.AssetRecord{ID: 4, Name: "HQ", CriticalityScore: 8, VulnerabilityScore: 6},
		Barriers: []gemsapi.BarrierRecord{{
			ID: 9, Name: "Perimeter fence", Category: "Physical",
			EffectivenessScores: map[string]gemsapi.EffectivenessRecord{
				"terrorism": {RiskType: "Terrorism", Overall: 7.2},
			},
		}},
		RiskMatrices: []gemsapi.RiskMatrixRecord{
			{RiskType: "Terrorism", Score: 7, Level: "HIGH"},
			{RiskType: "Crime", Score: 2},
		},
	}, nil)
	require.NoError(t, o.LoadAssetDetail(context.Background(), 4))

	snap := o.AssetView()
	require.Equal(t, store.StatusReady, snap.Status)
	// The asset list loaded before opening the detail survives.
	require.Len(t, snap.Data.Assets, 1)
	require.NotNil(t, snap.Data.Current)
	require.InDelta(t, 7.0, snap.Data.Current.RiskScore, 1e-9)
	require.Len(t, snap.Data.Barriers, 1)
	require.InDelta(t, 7.2, snap.Data.Barriers[0].Effectiveness["terrorism"].Overall, 1e-9)
	// Levels come from the backend when present, else from classification.
	require.Equal(t, domain.RiskLevelHigh, snap.Data.RiskMatrix[0].Level)
	require.Equal(t, domain.RiskLevelLow, snap.Data.RiskMatrix[1].Level)
}

func TestReportBarrierIssue_DoesNotTouchStores(t *testing.T) {
	client, o := newTestOrchestrator(t)

	client.EXPECT().ReportBarrierIssue(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, o.ReportBarrierIssue(context.Background(), gemsapi.BarrierIssueReport{
		AssetID: 4, BarrierID: 9, Description: "fence cut", ImpactRating: domain.BarrierImpactMajor,
	}))

	// Writes never drive store transitions; refresh is the caller's call.
	require.Equal(t, store.StatusIdle, o.AssetView().Status)
}

func TestClearCountrySelection(t *testing.T) {
	client, o := newTestOrchestrator(t)

	client.EXPECT().SecurityManagerData(gomock.Any(), int64(7)).Return(&gemsapi.SecurityManagerResponse{
		SelectedCountry: &gemsapi.CountryRecord{ID: 7, Name: "Iraq"},
		Assets:          []gemsapi.AssetRecord{{ID: 10, Name: "Refinery"}},
	}, nil)
	require.NoError(t, o.LoadCountryDetail(context.Background(), 7))

	o.ClearCountrySelection()

	snap := o.RiskView()
	require.Equal(t, store.StatusIdle, snap.Status)
	require.Empty(t, snap.Data.CountryAssets)
	require.Zero(t, snap.Data.SelectedCountryID)
}
