package tui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/service"
	"github.com/MKhiriev/dcms-sync/models"
)

// eventBuffer bounds notifications waiting for the dashboard; overflow is
// dropped because the next status load shows the same state.
const eventBuffer = 32

type TUI struct {
	engine    service.ClientSyncEngine
	buildInfo models.AppBuildInfo
	origin    string
	logger    *logger.Logger
}

func New(engine service.ClientSyncEngine, buildInfo models.AppBuildInfo, origin string, logger *logger.Logger) *TUI {
	return &TUI{
		engine:    engine,
		buildInfo: buildInfo,
		origin:    origin,
		logger:    logger,
	}
}

// Run shows the dashboard until the operator quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	events := make(chan models.Event, eventBuffer)
	for _, c := range models.KnownCollections {
		unsubscribe := t.engine.Subscribe(c, func(event models.Event) {
			select {
			case events <- event:
			default:
				t.logger.Debug().Str("event", event.Name()).Msg("dashboard busy, event dropped")
			}
		})
		defer unsubscribe()
	}

	model := newDashboardModel(ctx, t.engine, events, t.buildInfo, t.origin, clipboard.WriteAll)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
