package app

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/livefilter/internal/config"
	"github.com/pstuifzand/livefilter/internal/filter"
	"github.com/pstuifzand/livefilter/internal/model"
	"github.com/pstuifzand/livefilter/internal/theme"
	"github.com/pstuifzand/livefilter/internal/trigger"
	"github.com/pstuifzand/livefilter/internal/ui"
)

// queryEvent carries a settled query from the debounce timer to the event
// loop, so filter passes always run on the loop's goroutine
type queryEvent struct {
	tcell.EventTime
	query string
}

// App is the main application controller
type App struct {
	screen    *ui.Screen
	list      *model.List
	title     string
	engine    *filter.Engine
	trigger   *trigger.Debouncer
	search    *ui.SearchBar
	view      *ui.ListView
	stats     filter.Stats
	statusMsg string
	quit      bool
	debugMode bool
}

// NewApp creates an App showing list on the terminal
func NewApp(title string, list *model.List, groups []string, cfg *config.Config) (*App, error) {
	screen, err := ui.NewScreen(theme.LoadThemeOrDefault(cfg.Theme))
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	return newAppWithScreen(screen, title, list, groups, cfg), nil
}

func newAppWithScreen(screen *ui.Screen, title string, list *model.List, groups []string, cfg *config.Config) *App {
	a := &App{
		screen:    screen,
		list:      list,
		title:     title,
		search:    ui.NewSearchBar(),
		statusMsg: "Type to filter, Esc to clear, Ctrl-C to quit",
	}

	a.engine = filter.New(groups, filter.SourceFunc(list.FilterItems), filter.WithLogger(log.Default()))
	a.trigger = trigger.New(cfg.Debounce(), a.postQuery)
	a.view = ui.NewListView(list, func(class string) bool {
		return a.engine.GroupIndex(class) != -1
	})
	a.stats = filter.Stats{Items: list.Len(), Visible: len(list.VisibleItems())}

	return a
}

// SetDebugMode shows pass statistics in the status line
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}

// SetQuery puts q in the search bar and applies it right away
func (a *App) SetQuery(q string) {
	a.search.SetQuery(q)
	a.trigger.Input(q)
	a.trigger.Flush()
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	a.render()
	for !a.quit {
		ev := a.screen.PollEvent()
		if ev == nil {
			break
		}
		a.handleEvent(ev)
		a.render()
	}

	return nil
}

// Close stops the pending query and closes the screen
func (a *App) Close() error {
	a.trigger.Stop()
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// postQuery runs on the debounce timer's goroutine
func (a *App) postQuery(q string) {
	ev := &queryEvent{query: q}
	ev.SetEventNow()
	if err := a.screen.PostEvent(ev); err != nil {
		log.Printf("dropped query %q: %v", q, err)
	}
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *queryEvent:
		a.applyQuery(ev.query)
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	_, height := a.screen.Size()
	page := max(1, height-2)

	switch ev.Key() {
	case tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyEscape:
		if a.search.Query() == "" {
			a.quit = true
			return
		}
		a.search.Clear()
		a.trigger.Input("")
	case tcell.KeyEnter:
		a.trigger.Flush()
	case tcell.KeyUp:
		a.view.MoveSelection(-1)
	case tcell.KeyDown:
		a.view.MoveSelection(1)
	case tcell.KeyPgUp:
		a.view.MoveSelection(-page)
	case tcell.KeyPgDn:
		a.view.MoveSelection(page)
	default:
		if a.search.HandleKey(ev) {
			a.trigger.Input(a.search.Query())
		}
	}
}

// applyQuery runs a filter pass and refreshes the view
func (a *App) applyQuery(q string) {
	a.stats = a.engine.Run(q)
	a.view.Refresh()

	if a.debugMode {
		a.statusMsg = fmt.Sprintf("pass %q: %d terms, %d groups, %s", q, a.stats.Terms, a.stats.Groups, a.stats.Duration.Round(time.Microsecond))
	}
}

// render renders the current state to the screen
func (a *App) render() {
	a.screen.Clear()
	_, height := a.screen.Size()

	a.search.Draw(a.screen, 0, a.stats.Visible, a.stats.Items, a.trigger.Pending())
	a.view.Draw(a.screen, 1, height-2)

	status := a.statusMsg
	if a.title != "" {
		status = a.title + " | " + status
	}
	width, _ := a.screen.Size()
	a.screen.DrawStringLimited(0, height-1, status, width, a.screen.StatusMessageStyle())

	a.screen.Show()
}
