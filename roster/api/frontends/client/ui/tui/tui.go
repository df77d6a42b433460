// Package tui renders the roster in the terminal.
package tui

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/ardanlabs/roster/roster/app/sdk/roster"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App is the set of handlers the screen drives.
type App interface {
	SearchHandler(text string)
	RemoveHandler(id string)
	RestoreHandler(id string)
	IncrementRandomHandler()
	IncrementOddHandler()
	DecrementHandler(n int)
	ResetHandler()
}

const help = "[green]Tab[-] next  [green]Enter[-] remove/restore  [green]Esc[-] quit"

// =============================================================================

type TUI struct {
	tviewApp *tview.Application
	flex     *tview.Flex
	search   *tview.InputField
	users    *tview.List
	removed  *tview.List
	details  *tview.TextView
	count    *tview.TextView
	amount   *tview.InputField
	focus    []tview.Primitive
	visible  []roster.User
	syncing  bool
	app      App
}

func New() *TUI {
	var ui TUI

	app := tview.NewApplication()

	// -------------------------------------------------------------------------

	search := tview.NewInputField()
	search.SetLabel("Search: ")
	search.SetPlaceholder("username...")
	search.SetBorder(true)
	search.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyRune {
			return event
		}
		return tcell.NewEventKey(tcell.KeyRune, unicode.ToLower(event.Rune()), event.Modifiers())
	})
	search.SetChangedFunc(func(text string) {
		if ui.app == nil || ui.syncing {
			return
		}
		ui.app.SearchHandler(text)
	})

	// -------------------------------------------------------------------------

	details := tview.NewTextView().
		SetTextAlign(tview.AlignLeft).
		SetWordWrap(true)

	details.SetBorder(true)
	details.SetTitle("User")

	// -------------------------------------------------------------------------

	users := tview.NewList()
	users.SetBorder(true)
	users.SetTitle("Users")
	users.ShowSecondaryText(false)
	users.SetChangedFunc(func(idx int, name string, id string, shortcut rune) {
		ui.showDetails(idx)
	})
	users.SetInputCapture(onEnter(users, func(id string) {
		if ui.app == nil {
			return
		}
		ui.app.RemoveHandler(id)
	}))

	removed := tview.NewList()
	removed.SetBorder(true)
	removed.SetTitle("Removed")
	removed.ShowSecondaryText(false)
	removed.SetInputCapture(onEnter(removed, func(id string) {
		if ui.app == nil {
			return
		}
		ui.app.RestoreHandler(id)
	}))

	// -------------------------------------------------------------------------

	count := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	count.SetBorder(true)
	count.SetTitle("Count")

	amount := tview.NewInputField()
	amount.SetLabel("Amount: ")
	amount.SetText("0")
	amount.SetAcceptanceFunc(tview.InputFieldInteger)
	amount.SetBorder(true)

	incRandom := newButton("Increment Random", func() {
		if ui.app == nil {
			return
		}
		ui.app.IncrementRandomHandler()
	})

	incOdd := newButton("Increment Nearest Odd", func() {
		if ui.app == nil {
			return
		}
		ui.app.IncrementOddHandler()
	})

	decrease := newButton("Decrease Count", ui.decreaseHandler)

	reset := newButton("Reset Count", func() {
		if ui.app == nil {
			return
		}
		ui.app.ResetHandler()
	})

	footer := tview.NewTextView().
		SetDynamicColors(true).
		SetText(help)

	// -------------------------------------------------------------------------

	flex := tview.NewFlex().
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(users, 0, 3, false).
			AddItem(removed, 0, 1, false),
			30, 1, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(search, 3, 0, false).
			AddItem(details, 0, 1, false).
			AddItem(count, 3, 0, false).
			AddItem(tview.NewFlex().
				SetDirection(tview.FlexColumn).
				AddItem(incRandom, 0, 1, false).
				AddItem(incOdd, 0, 1, false),
				3, 0, false).
			AddItem(tview.NewFlex().
				SetDirection(tview.FlexColumn).
				AddItem(amount, 0, 1, false).
				AddItem(decrease, 0, 1, false).
				AddItem(reset, 0, 1, false),
				3, 0, false).
			AddItem(footer, 1, 0, false),
			0, 1, false)

	ui.focus = []tview.Primitive{search, users, removed, incRandom, incOdd, amount, decrease, reset}

	flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlQ:
			app.Stop()
			return nil

		case tcell.KeyTab:
			ui.cycleFocus(1)
			return nil

		case tcell.KeyBacktab:
			ui.cycleFocus(-1)
			return nil
		}

		return event
	})

	ui.tviewApp = app
	ui.flex = flex
	ui.search = search
	ui.users = users
	ui.removed = removed
	ui.details = details
	ui.count = count
	ui.amount = amount

	return &ui
}

func (ui *TUI) SetApp(app App) {
	ui.app = app
}

func (ui *TUI) Run() error {
	return ui.tviewApp.SetRoot(ui.flex, true).SetFocus(ui.search).EnableMouse(true).Run()
}

// Render redraws the lists, the counter and the search field from the
// given state.
func (ui *TUI) Render(state roster.State, visible []roster.User) {
	ui.visible = visible

	fillList(ui.users, visible)
	fillList(ui.removed, state.RemovedUsers)

	ui.count.SetText(fmt.Sprintf("[yellow]%d[-]", state.Count))

	if ui.search.GetText() != state.SearchText {
		ui.syncing = true
		ui.search.SetText(state.SearchText)
		ui.syncing = false
	}

	if len(visible) == 0 {
		ui.details.Clear()
		return
	}

	ui.showDetails(ui.users.GetCurrentItem())
}

// =============================================================================

func (ui *TUI) showDetails(idx int) {
	ui.details.Clear()

	if idx < 0 || idx >= len(ui.visible) {
		return
	}

	usr := ui.visible[idx]

	fmt.Fprintln(ui.details, usr.Username)
	fmt.Fprintln(ui.details, usr.Address.Street)
	fmt.Fprintln(ui.details, usr.Age)
	fmt.Fprintln(ui.details, usr.CompanyName)
	fmt.Fprintln(ui.details, "-----")
	fmt.Fprintln(ui.details, "id: "+usr.ID)
}

func (ui *TUI) decreaseHandler() {
	if ui.app == nil {
		return
	}

	n, err := strconv.Atoi(ui.amount.GetText())
	if err != nil {
		return
	}

	ui.app.DecrementHandler(n)
}

func (ui *TUI) cycleFocus(step int) {
	current := ui.tviewApp.GetFocus()

	idx := 0
	for i, p := range ui.focus {
		if p == current {
			idx = (i + step + len(ui.focus)) % len(ui.focus)
			break
		}
	}

	ui.tviewApp.SetFocus(ui.focus[idx])
}

// =============================================================================

func newButton(label string, selected func()) *tview.Button {
	button := tview.NewButton(label)
	button.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen).Bold(true))
	button.SetActivatedStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen).Bold(true))
	button.SetBorder(true)
	button.SetBorderColor(tcell.ColorGreen)
	button.SetSelectedFunc(selected)

	return button
}

// onEnter calls fn with the id of the current item when Enter is pressed.
// Mouse clicks only move the selection.
func onEnter(list *tview.List, fn func(id string)) func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyEnter {
			return event
		}

		if list.GetItemCount() > 0 {
			_, id := list.GetItemText(list.GetCurrentItem())
			fn(id)
		}

		return nil
	}
}

// fillList replaces the list items, keeping the selection where possible.
func fillList(list *tview.List, users []roster.User) {
	current := list.GetCurrentItem()

	list.Clear()
	for _, usr := range users {
		list.AddItem(usr.Username, usr.ID, 0, nil)
	}

	if len(users) == 0 {
		return
	}

	list.SetCurrentItem(min(current, len(users)-1))
}
