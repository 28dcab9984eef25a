package tui

import (
	"time"

	"github.com/MKhiriev/dcms-sync/models"
)

type statusLoadedMsg struct {
	status     models.SyncStatus
	counts     map[models.Collection]int
	lastServer map[models.Collection]time.Time
	err        error
}

// actionDoneMsg ends a refresh or push started from the keyboard.
type actionDoneMsg struct {
	action string
}

type eventMsg struct {
	event models.Event
}

type copiedMsg struct {
	err error
}

type tickMsg time.Time

type clearStatusMsg struct{}
