package service

import (
	"testing"

	"github.com/romanibanez/booking-reminder-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockSchedulingAPI *mocks.MockSchedulingAPI
	mockSlackAPI      *mocks.MockSlackAPI
	mockDataManager   *mocks.MockDataManager
	mockRosterRepo    *mocks.MockRosterRepo
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	rosterRepo := mocks.NewMockRosterRepo(ctrl)
	dm.EXPECT().Roster().Return(rosterRepo).AnyTimes()

	m = allMocks{
		mockSchedulingAPI: mocks.NewMockSchedulingAPI(ctrl),
		mockSlackAPI:      mocks.NewMockSlackAPI(ctrl),
		mockDataManager:   dm,
		mockRosterRepo:    rosterRepo,
	}

	// validate service creation
	exportService := newExport(m.mockSlackAPI, dm)
	require.NotNil(t, exportService)

	return
}
