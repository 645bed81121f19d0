package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/admitdesk/internal/models"
	board "github.com/thenoetrevino/admitdesk/internal/pipeline"
	"github.com/thenoetrevino/admitdesk/internal/seed"
	"github.com/thenoetrevino/admitdesk/internal/services/directory"
	"github.com/thenoetrevino/admitdesk/internal/services/pipeline"
)

type fakeFeed struct {
	ds  *seed.Dataset
	err error
}

func (f fakeFeed) GetActivities(context.Context) ([]models.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ds.Activities, nil
}

func (f fakeFeed) GetNotifications(context.Context) ([]models.Notification, error) {
	return f.ds.Notifications, nil
}

func (f fakeFeed) GetTrends(context.Context) (seed.Trends, error) {
	return f.ds.Trends, nil
}

func setupDashboard(t *testing.T) (Service, pipeline.Service) {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)

	store, err := board.NewStore(ds.Stages, ds.Applications)
	require.NoError(t, err)
	pipe := pipeline.NewService(store, nil)
	dir := directory.NewService(ds.Students, ds.Universities)

	svc, err := Load(context.Background(), fakeFeed{ds: ds}, dir, pipe)
	require.NoError(t, err)
	return svc, pipe
}

func TestKPIs_DefaultDataset(t *testing.T) {
	svc, _ := setupDashboard(t)

	want := []models.KPI{
		{Title: KPITotalStudents, Value: 3, Change: "+12%"},
		{Title: KPIActiveApplications, Value: 5, Change: "+8%"},
		{Title: KPIPartnerUniversities, Value: 3, Change: "+3%"},
		{Title: KPIAvailableScholarships, Value: 40, Change: "+15%"},
	}
	assert.Equal(t, want, svc.KPIs())
}

func TestKPIs_FollowBoardMoves(t *testing.T) {
	svc, pipe := setupDashboard(t)

	_, err := pipe.MoveCard(context.Background(), 1, models.StageEnrolled)
	require.NoError(t, err)

	assert.Equal(t, 4, svc.KPIs()[1].Value)

	summary := svc.PipelineSummary()
	require.Len(t, summary, 5)
	assert.Equal(t, models.StageNew, summary[0].Stage.ID)
	assert.Equal(t, 1, summary[0].Count)
	assert.Equal(t, 2, summary[4].Count)
}

func TestOverview(t *testing.T) {
	svc, _ := setupDashboard(t)

	ov := svc.Overview()
	assert.Len(t, ov.KPIs, 4)
	assert.Len(t, ov.Pipeline, 5)
	assert.Len(t, ov.Activities, 4)
	assert.Len(t, ov.Notifications, 3)
}

func TestLoad_FeedError(t *testing.T) {
	_, err := Load(context.Background(), fakeFeed{err: errors.New("boom")}, nil, nil)
	assert.Error(t, err)
}
