package tui

import (
	"sync"
	"testing"
	"time"

	"github.com/ardanlabs/roster/roster/app/sdk/roster"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type app struct {
	removes  chan string
	restores chan string
	searches chan string

	mu         sync.Mutex
	decrements []int
}

func newApp() *app {
	return &app{
		removes:  make(chan string, 10),
		restores: make(chan string, 10),
		searches: make(chan string, 10),
	}
}

func (a *app) SearchHandler(text string) { a.searches <- text }
func (a *app) RemoveHandler(id string)   { a.removes <- id }
func (a *app) RestoreHandler(id string)  { a.restores <- id }
func (a *app) IncrementRandomHandler()   {}
func (a *app) IncrementOddHandler()      {}
func (a *app) ResetHandler()             {}

func (a *app) DecrementHandler(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.decrements = append(a.decrements, n)
}

var (
	alice = roster.User{ID: "A11111", Username: "Alice", Age: 30, CompanyName: "Acme", Address: roster.Address{Street: "Main"}}
	bob   = roster.User{ID: "B22222", Username: "Bob", Age: 40, CompanyName: "Globex"}
	carol = roster.User{ID: "C33333", Username: "Carol", Age: 50, CompanyName: "Initech"}
)

// runSimulated runs the event loop on an in-memory screen until the test ends.
func runSimulated(t *testing.T, ui *TUI) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	ui.tviewApp.SetScreen(screen)
	screen.SetSize(100, 30)

	done := make(chan error, 1)
	go func() {
		done <- ui.Run()
	}()

	t.Cleanup(func() {
		ui.tviewApp.Stop()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("event loop did not stop")
		}
	})

	return screen
}

func receive(t *testing.T, ch chan string, what string) string {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatalf("%s: handler not called within 2s", what)
		return ""
	}
}

// =============================================================================

func TestRender(t *testing.T) {
	ui := New()
	ui.SetApp(newApp())

	state := roster.State{
		Users:        []roster.User{alice, bob},
		RemovedUsers: []roster.User{carol},
		Count:        7,
	}

	ui.Render(state, state.Users)

	require.Equal(t, 2, ui.users.GetItemCount())
	name, id := ui.users.GetItemText(1)
	assert.Equal(t, "Bob", name)
	assert.Equal(t, "B22222", id)

	require.Equal(t, 1, ui.removed.GetItemCount())
	name, _ = ui.removed.GetItemText(0)
	assert.Equal(t, "Carol", name)

	assert.Equal(t, "7", ui.count.GetText(true))

	details := ui.details.GetText(true)
	assert.Contains(t, details, "Alice")
	assert.Contains(t, details, "Main")
	assert.Contains(t, details, "Acme")

	ui.Render(roster.State{}, nil)
	assert.Equal(t, 0, ui.users.GetItemCount())
	assert.Empty(t, ui.details.GetText(true))
}

func TestRenderSyncsSearchText(t *testing.T) {
	ui := New()
	ui.search.SetText("ALI")

	a := newApp()
	ui.SetApp(a)

	ui.Render(roster.State{SearchText: "ali"}, nil)

	assert.Equal(t, "ali", ui.search.GetText())
	assert.Empty(t, a.searches)
}

func TestEnterRemovesAndRestores(t *testing.T) {
	a := newApp()

	ui := New()
	ui.SetApp(a)

	state := roster.State{
		Users:        []roster.User{alice, bob},
		RemovedUsers: []roster.User{carol},
	}
	ui.Render(state, state.Users)

	screen := runSimulated(t, ui)

	screen.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	assert.Equal(t, bob.ID, receive(t, a.removes, "remove"))

	screen.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	assert.Equal(t, carol.ID, receive(t, a.restores, "restore"))
}

func TestClickSelectsWithoutRemoving(t *testing.T) {
	a := newApp()

	ui := New()
	ui.SetApp(a)
	ui.Render(roster.State{Users: []roster.User{alice, bob}}, []roster.User{alice, bob})

	screen := runSimulated(t, ui)

	// Row 0 is the border, rows 1 and 2 hold Alice and Bob.
	screen.InjectMouse(2, 2, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(2, 2, tcell.ButtonNone, tcell.ModNone)

	require.Eventually(t, func() bool {
		var current int
		ui.tviewApp.QueueUpdate(func() {
			current = ui.users.GetCurrentItem()
		})
		return current == 1
	}, 2*time.Second, 20*time.Millisecond)

	assert.Empty(t, a.removes)
}

func TestSearchIsLowerCased(t *testing.T) {
	a := newApp()

	ui := New()
	ui.SetApp(a)

	screen := runSimulated(t, ui)
	screen.InjectKey(tcell.KeyRune, 'A', tcell.ModNone)

	assert.Equal(t, "a", receive(t, a.searches, "search"))
}

func TestDecreaseHandler(t *testing.T) {
	a := newApp()

	ui := New()
	ui.SetApp(a)

	ui.amount.SetText("5")
	ui.decreaseHandler()

	ui.amount.SetText("-")
	ui.decreaseHandler()

	assert.Equal(t, []int{5}, a.decrements)
}

func TestHandlersWithoutApp(t *testing.T) {
	ui := New()

	assert.NotPanics(t, func() {
		ui.decreaseHandler()
		ui.search.SetText("x")
	})
}

func TestCycleFocus(t *testing.T) {
	ui := New()
	ui.tviewApp.SetFocus(ui.search)

	ui.cycleFocus(1)
	assert.Equal(t, ui.users, ui.tviewApp.GetFocus())

	ui.cycleFocus(-1)
	ui.cycleFocus(-1)
	assert.Equal(t, ui.focus[len(ui.focus)-1], ui.tviewApp.GetFocus())
}
