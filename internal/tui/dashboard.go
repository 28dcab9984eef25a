package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dcms-sync/internal/service"
	"github.com/MKhiriev/dcms-sync/models"
)

const (
	statusInterval = time.Second
	clearAfter     = 3 * time.Second
	maxRecent      = 6
)

// dashboardModel shows the engine state of one origin and lets the operator
// trigger a manual refresh or push.
type dashboardModel struct {
	ctx       context.Context
	engine    service.ClientSyncEngine
	events    <-chan models.Event
	buildInfo models.AppBuildInfo
	origin    string

	copyToClipboard func(string) error

	status     models.SyncStatus
	counts     map[models.Collection]int
	lastServer map[models.Collection]time.Time
	recent     []string

	sync          syncModel
	notice        string
	errMsg        string
	showBuildInfo bool
}

func newDashboardModel(ctx context.Context, engine service.ClientSyncEngine, events <-chan models.Event, buildInfo models.AppBuildInfo, origin string, copyFn func(string) error) dashboardModel {
	return dashboardModel{
		ctx:             ctx,
		engine:          engine,
		events:          events,
		buildInfo:       buildInfo,
		origin:          origin,
		copyToClipboard: copyFn,
		sync:            newSyncModel(),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadStatus(), m.cmdWaitEvent(), cmdTick())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case statusLoadedMsg:
		m.status = msg.status
		m.counts = msg.counts
		if msg.lastServer != nil {
			m.lastServer = msg.lastServer
		}
		m.errMsg = humanizeError(msg.err)
		return m, nil

	case actionDoneMsg:
		m.sync.running = false
		m.notice = msg.action + " finished"
		return m, tea.Batch(m.cmdLoadStatus(), cmdClearStatus())

	case eventMsg:
		line := fmt.Sprintf("%s  %s (%d records)", msg.event.At.Local().Format("15:04:05"), msg.event.Name(), len(msg.event.Records))
		m.recent = append([]string{line}, m.recent...)
		if len(m.recent) > maxRecent {
			m.recent = m.recent[:maxRecent]
		}
		return m, tea.Batch(m.cmdLoadStatus(), m.cmdWaitEvent())

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "copy failed: " + msg.err.Error()
			return m, nil
		}
		m.notice = "status copied to clipboard"
		return m, cmdClearStatus()

	case tickMsg:
		return m, tea.Batch(m.cmdLoadStatus(), cmdTick())

	case clearStatusMsg:
		m.notice = ""
		return m, nil

	case spinner.TickMsg:
		if !m.sync.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.sync.spinner, cmd = m.sync.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.showBuildInfo = false
		return m, nil
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = !m.showBuildInfo
		return m, nil
	}

	if m.showBuildInfo {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.refresh):
		return m.startAction("refresh", func(ctx context.Context) {
			m.engine.Refresh(ctx)
		})
	case key.Matches(msg, keys.push):
		return m.startAction("push", func(ctx context.Context) {
			m.engine.PushAllCollections(ctx)
			m.engine.PushPendingChanges(ctx)
		})
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy()
	}

	return m, nil
}

// startAction runs fn unless another keyboard action is still running.
func (m dashboardModel) startAction(name string, fn func(ctx context.Context)) (tea.Model, tea.Cmd) {
	if m.sync.running {
		return m, nil
	}
	m.sync.running = true
	m.sync.action = name
	m.notice = ""

	ctx := m.ctx
	run := func() tea.Msg {
		fn(ctx)
		return actionDoneMsg{action: name}
	}
	return m, tea.Batch(run, m.sync.spinner.Tick)
}

func (m dashboardModel) cmdLoadStatus() tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		msg := statusLoadedMsg{
			status: engine.Status(),
			counts: make(map[models.Collection]int, len(models.KnownCollections)),
		}

		for _, c := range models.KnownCollections {
			records, err := engine.Collection(ctx, c)
			if err != nil {
				msg.err = err
				continue
			}
			msg.counts[c] = len(records)
		}

		if msg.status.State != models.Connected {
			return msg
		}
		msg.lastServer = make(map[models.Collection]time.Time, len(models.KnownCollections))
		for _, c := range models.KnownCollections {
			at, err := engine.LastServerUpdate(ctx, c)
			if err != nil {
				msg.err = err
				continue
			}
			msg.lastServer[c] = at
		}
		return msg
	}
}

func (m dashboardModel) cmdWaitEvent() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg{event: event}
	}
}

func (m dashboardModel) cmdCopy() tea.Cmd {
	text, copyFn := m.statusText(), m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

func cmdTick() tea.Cmd {
	return tea.Tick(statusInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(clearAfter, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// statusText is the plain report put on the clipboard.
func (m dashboardModel) statusText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "origin: %s\n", valueOrNA(m.origin))
	fmt.Fprintf(&b, "state: %s\n", m.status.State)
	fmt.Fprintf(&b, "protocol: %s\n", valueOrNA(m.status.Protocol))
	fmt.Fprintf(&b, "reconnect scheduled: %t\n", m.status.ReconnectScheduled)
	for _, c := range models.KnownCollections {
		fmt.Fprintf(&b, "%s: local=%d dirty=%t last push=%s last server write=%s\n",
			c, m.counts[c], m.isDirty(c), formatTime(m.status.LastSync[c]), formatTime(m.lastServer[c]))
	}

	return b.String()
}

func (m dashboardModel) isDirty(c models.Collection) bool {
	for _, d := range m.status.Dirty {
		if d == c {
			return true
		}
	}
	return false
}

func (m dashboardModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.origin)
	}

	var b strings.Builder

	state := disconnectedStyle.Render(m.status.State.String())
	if m.status.State == models.Connected {
		state = connectedStyle.Render(m.status.State.String())
	}
	fmt.Fprintf(&b, "Origin: %s   Server: %s   Protocol: %s\n", valueOrNA(m.origin), state, valueOrNA(m.status.Protocol))
	if m.status.ReconnectScheduled {
		b.WriteString("Reconnect scheduled\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%-10s %7s  %-5s  %-19s  %-19s\n", "COLLECTION", "LOCAL", "DIRTY", "LAST PUSH", "LAST SERVER WRITE")
	for _, c := range models.KnownCollections {
		dirty := ""
		if m.isDirty(c) {
			dirty = "*"
		}
		fmt.Fprintf(&b, "%-10s %7d  %-5s  %-19s  %-19s\n",
			c, m.counts[c], dirty, formatTime(m.status.LastSync[c]), formatTime(m.lastServer[c]))
	}

	if len(m.recent) > 0 {
		b.WriteString("\nRecent events:\n")
		for _, line := range m.recent {
			b.WriteString(fitText(line, 70))
			b.WriteString("\n")
		}
	}

	if s := m.sync.View(); s != "" {
		b.WriteString("\n" + s + "\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + m.notice + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	return renderPage("DCMS SYNC", b.String(), "r: refresh  p: push  c: copy status  v: about")
}
