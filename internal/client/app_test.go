package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/mock"
	"github.com/MKhiriev/dcms-sync/internal/service"
	"github.com/MKhiriev/dcms-sync/models"
)

type uiFunc func(ctx context.Context) error

func (f uiFunc) Run(ctx context.Context) error { return f(ctx) }

func newTestApp(t *testing.T, ui UI, headless bool) (*App, *mock.MockClientSyncEngine, *mock.MockLocalStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	engine := mock.NewMockClientSyncEngine(ctrl)
	storage := mock.NewMockLocalStorage(ctrl)

	app, err := NewApp(&service.ClientServices{SyncEngine: engine}, storage, ui, headless, logger.Nop())
	require.NoError(t, err)
	return app, engine, storage
}

func TestNewApp_RequiresUI(t *testing.T) {
	_, err := NewApp(&service.ClientServices{}, nil, nil, false, logger.Nop())

	assert.ErrorIs(t, err, errNoUI)
}

func TestApp_Run_Headless(t *testing.T) {
	app, engine, storage := newTestApp(t, nil, true)

	gomock.InOrder(
		engine.EXPECT().Start(gomock.Any()).Return(nil),
		engine.EXPECT().Refresh(gomock.Any()),
		engine.EXPECT().Status().Return(models.SyncStatus{State: models.Connected}),
		engine.EXPECT().Stop(),
		storage.EXPECT().Close().Return(nil),
	)

	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_Run_Dashboard(t *testing.T) {
	var ran bool
	app, engine, storage := newTestApp(t, uiFunc(func(context.Context) error {
		ran = true
		return nil
	}), false)

	gomock.InOrder(
		engine.EXPECT().Start(gomock.Any()).Return(nil),
		engine.EXPECT().Stop(),
		storage.EXPECT().Close().Return(nil),
	)

	assert.NoError(t, app.Run(context.Background()))
	assert.True(t, ran)
}

func TestApp_Run_DashboardError(t *testing.T) {
	boom := errors.New("no tty")
	app, engine, storage := newTestApp(t, uiFunc(func(context.Context) error { return boom }), false)

	engine.EXPECT().Start(gomock.Any()).Return(nil)
	engine.EXPECT().Stop()
	storage.EXPECT().Close().Return(nil)

	assert.ErrorIs(t, app.Run(context.Background()), boom)
}

func TestApp_Run_StartFailureStillClosesStorage(t *testing.T) {
	app, engine, storage := newTestApp(t, nil, true)
	closeErr := errors.New("close failed")

	engine.EXPECT().Start(gomock.Any()).Return(service.ErrEngineStopped)
	storage.EXPECT().Close().Return(closeErr)

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, service.ErrEngineStopped)
	assert.ErrorIs(t, err, closeErr)
}
