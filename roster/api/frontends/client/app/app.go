// Package app provides client app support.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardanlabs/roster/roster/app/sdk/roster"
	"github.com/ardanlabs/roster/roster/foundation/logger"
	"github.com/google/uuid"
)

// Source provides the raw user records the roster is seeded from.
type Source interface {
	Name() string
	Records(ctx context.Context) ([]roster.Record, error)
}

// UI renders the roster.
type UI interface {
	Run() error
	Render(state roster.State, visible []roster.User)
}

// =============================================================================

// App connects the record source, the store and the UI. Every handler
// dispatches one action and re-renders.
type App struct {
	log    *logger.Logger
	store  *roster.Store
	source Source
	ui     UI
}

// New constructs the client app.
func New(log *logger.Logger, store *roster.Store, source Source, ui UI) *App {
	return &App{
		log:    log,
		store:  store,
		source: source,
		ui:     ui,
	}
}

// Start loads the records from the source into the store and renders the
// initial screen. It must be called once, before Run.
func (app *App) Start(ctx context.Context) error {
	records, err := app.source.Records(ctx)
	if err != nil {
		return fmt.Errorf("records: %s: %w", app.source.Name(), err)
	}

	n := app.store.Load(ctx, records)

	app.log.Info(ctx, "app-start", "source", app.source.Name(), "records", len(records), "users", n)

	app.render()

	return nil
}

// Run blocks until the UI exits.
func (app *App) Run() error {
	return app.ui.Run()
}

// =============================================================================

// SearchHandler filters the roster by username.
func (app *App) SearchHandler(text string) {
	app.dispatch(roster.SetSearchText(strings.ToLower(text)))
}

// RemoveHandler moves a user into the removed pool.
func (app *App) RemoveHandler(id string) {
	app.dispatch(roster.RemoveUser(id))
}

// RestoreHandler moves a user back into the roster.
func (app *App) RestoreHandler(id string) {
	app.dispatch(roster.RestoreUser(id))
}

// IncrementRandomHandler adds a random value in [1,10] to the counter.
func (app *App) IncrementRandomHandler() {
	app.dispatch(roster.IncrementRandom())
}

// IncrementOddHandler moves the counter to the next odd number.
func (app *App) IncrementOddHandler() {
	app.dispatch(roster.IncrementNearestOdd())
}

// DecrementHandler subtracts n from the counter.
func (app *App) DecrementHandler(n int) {
	app.dispatch(roster.DecrementCount(n))
}

// ResetHandler zeroes the counter.
func (app *App) ResetHandler() {
	app.dispatch(roster.ResetCount())
}

// =============================================================================

func (app *App) dispatch(action roster.Action) {
	ctx := logger.SetTraceID(context.Background(), uuid.New())

	app.store.Dispatch(ctx, action)
	app.render()
}

func (app *App) render() {
	state := app.store.State()
	app.ui.Render(state, roster.Visible(state))
}
