// Package ui is the terminal front end of the code table: a searchable
// 16x8 grid, a selection line, copy actions and CSV export.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	tickInterval = 100 * time.Millisecond
	statusTTL    = 5 * time.Second
)

// App binds a model to a tcell screen and runs the event loop
type App struct {
	screen tcell.Screen
	model  *Model
	layout Layout

	statusSeen string
	statusAt   time.Time
}

// NewApp wraps an uninitialized screen
func NewApp(screen tcell.Screen, m *Model) *App {
	return &App{screen: screen, model: m}
}

// Init prepares the screen for drawing and mouse input
func (a *App) Init() error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	a.screen.EnableMouse()
	a.relayout()
	return nil
}

// Fini restores the terminal
func (a *App) Fini() {
	a.screen.Fini()
}

// Model returns the state driven by this app
func (a *App) Model() *Model { return a.model }

// Layout returns the geometry of the last frame
func (a *App) Layout() Layout { return a.layout }

func (a *App) relayout() {
	w, h := a.screen.Size()
	a.layout = NewLayout(w, h, MetricsFor(a.model.Prefs.FontSize))
}

// Step applies one event and redraws
func (a *App) Step(ev tcell.Event) {
	if _, ok := ev.(*tcell.EventResize); ok {
		a.screen.Sync()
	}
	a.model.HandleEvent(ev, a.layout)
	a.draw()
}

func (a *App) draw() {
	a.relayout()
	Draw(a.screen, a.model, a.layout)
	a.screen.Show()
}

// expireStatus clears a status message once it has been visible long enough
func (a *App) expireStatus(now time.Time) bool {
	m := a.model
	if m.Status != a.statusSeen {
		a.statusSeen = m.Status
		a.statusAt = now
		return false
	}
	if m.Status != "" && now.Sub(a.statusAt) > statusTTL {
		m.Status = ""
		a.statusSeen = ""
		return true
	}
	return false
}

// Run polls events until the model asks to quit
func (a *App) Run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	a.draw()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			a.Step(ev)
			if a.model.Done() {
				return
			}

		case now := <-ticker.C:
			if a.expireStatus(now) {
				a.draw()
			}
		}
	}
}
