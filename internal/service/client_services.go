package service

import (
	"github.com/MKhiriev/dcms-sync/internal/adapter"
	"github.com/MKhiriev/dcms-sync/internal/config"
	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/store"
)

type ClientServices struct {
	EventBus   EventBus
	SyncEngine ClientSyncEngine
}

func NewClientServices(localStore store.LocalStorage, serverAdapter adapter.SyncServerAdapter, cfg config.ClientSync, logger *logger.Logger) *ClientServices {
	bus := NewEventBus()

	return &ClientServices{
		EventBus:   bus,
		SyncEngine: NewClientSyncEngine(localStore, serverAdapter, bus, cfg, logger.WithComponent("sync-engine")),
	}
}
