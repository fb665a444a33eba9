package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/borz-social/borz/app"
	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/infra/editor"
	"github.com/borz-social/borz/infra/logger"
	"github.com/borz-social/borz/tui/action"
	"github.com/borz-social/borz/tui/common"
	"github.com/borz-social/borz/tui/compose"
	"github.com/borz-social/borz/tui/page"
)

const (
	tickInterval = 400 * time.Millisecond
	statusTTL    = 5 * time.Second
	fetchTimeout = 30 * time.Second
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Source   app.DataSource
	Editor   *editor.EnvEditor
	Username string
}

type tickMsg time.Time

type pageLoadedMsg struct {
	page page.Page
}

type loadFailedMsg struct {
	target action.Action
	err    error
}

type replyPostedMsg struct {
	threadID string
	content  domain.ThreadContent
}

type replyFailedMsg struct {
	threadID string
	text     string
	err      error
}

// App is the root Bubble Tea model. It owns the page stack and applies the
// actions widgets return.
type App struct {
	deps    Deps
	keys    common.KeyMap
	stack   *page.Stack
	spinner spinner.Model
	log     *slog.Logger

	width, height int

	// pending is set while a fetch runs; navigation keys are ignored.
	pending bool

	status      string
	statusErr   bool
	statusUntil time.Time

	err error // fatal error that ended the program
}

// NewApp creates the root model with all dependencies wired. The root group
// is fetched by Init.
func NewApp(deps Deps) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = common.TitleStyle
	return App{
		deps:    deps,
		keys:    common.DefaultKeyMap(),
		stack:   &page.Stack{},
		spinner: sp,
		log:     logger.ComponentLogger("tui"),
		pending: true,
	}
}

// Err returns the error that ended the program, if any.
func (a App) Err() error {
	return a.err
}

// Init starts the tick loop and loads the root group.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tick(),
		a.spinner.Tick,
		a.load(action.PushGroup(domain.RootGroupID, domain.RootGroupPath)),
	)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles messages and routes keys to the top page.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.pending {
			return a, nil
		}
		top, ok := a.stack.Top()
		if !ok {
			return a, nil
		}
		act := top.Update(msg)
		return a.apply(act)

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.stack.Resize(a.pageSize())
		return a, nil

	case tickMsg:
		if a.status != "" && time.Time(msg).After(a.statusUntil) {
			a.status = ""
		}
		return a, tick()

	case spinner.TickMsg:
		if !a.pending {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case pageLoadedMsg:
		a.pending = false
		msg.page.Resize(a.pageSize())
		a.stack.Push(msg.page)
		return a, nil

	case loadFailedMsg:
		a.pending = false
		a.log.Warn("load failed", "target", msg.target.String(), "err", msg.err)
		if a.stack.Len() == 0 {
			a.err = fmt.Errorf("loading %s: %w", msg.target.Path, msg.err)
			return a, tea.Quit
		}
		a.setStatus("Error: "+msg.err.Error(), true)
		return a, nil

	case replyPostedMsg:
		a.pending = false
		if tp, ok := a.topThread(msg.threadID); ok {
			fresh := tp.Refreshed(msg.content)
			fresh.Resize(a.pageSize())
			a.stack.Replace(fresh)
		}
		a.setStatus("Reply posted.", false)
		return a, nil

	case replyFailedMsg:
		a.pending = false
		a.log.Warn("reply failed", "thread", msg.threadID, "err", msg.err)
		if tp, ok := a.topThread(msg.threadID); ok && msg.text != "" {
			tp.Messages().SetDraft(msg.text)
		}
		a.setStatus("Error: "+msg.err.Error(), true)
		return a, nil

	case compose.EditorDoneMsg:
		if msg.Err != nil {
			a.setStatus("Error: "+msg.Err.Error(), true)
			return a, nil
		}
		if top, ok := a.stack.Top(); ok {
			if tp, ok := top.(*page.ThreadPage); ok {
				tp.Messages().SetDraft(msg.Text)
			}
		}
		return a, nil
	}

	return a, nil
}

// apply carries out the action returned by the top page.
func (a App) apply(act action.Action) (tea.Model, tea.Cmd) {
	if !act.IsNone() {
		a.log.Debug("action", "action", act.String())
	}
	switch act.Kind {
	case action.PopPage:
		a.stack.Pop()
		if a.stack.Len() == 0 {
			return a, tea.Quit
		}
		return a, nil

	case action.PushPage:
		a.pending = true
		a.status = ""
		return a, tea.Batch(a.spinner.Tick, a.load(act))

	case action.SubmitReply:
		a.pending = true
		a.setStatus("Posting reply...", false)
		return a, tea.Batch(a.spinner.Tick, a.reply(act.ID, act.Text))

	case action.OpenEditor:
		title := ""
		if top, ok := a.stack.Top(); ok {
			if tp, ok := top.(*page.ThreadPage); ok {
				title = tp.Title()
			}
		}
		return a, compose.OpenEditor(a.deps.Editor, act.Text, title)
	}
	return a, nil
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
	a.statusUntil = time.Now().Add(statusTTL)
}

func (a App) topThread(threadID string) (*page.ThreadPage, bool) {
	top, ok := a.stack.Top()
	if !ok {
		return nil, false
	}
	tp, ok := top.(*page.ThreadPage)
	if !ok || tp.ThreadID() != threadID {
		return nil, false
	}
	return tp, true
}

// pageSize is the screen minus the status line.
func (a App) pageSize() (int, int) {
	return a.width, max(a.height-1, 0)
}

// load fetches everything the target page shows and delivers the built page.
func (a App) load(target action.Action) tea.Cmd {
	src := a.deps.Source
	username := a.deps.Username
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		p, err := fetchPage(ctx, src, username, target)
		if err != nil {
			return loadFailedMsg{target: target, err: err}
		}
		return pageLoadedMsg{page: p}
	}
}

func fetchPage(ctx context.Context, src app.DataSource, username string, target action.Action) (page.Page, error) {
	switch target.Page {
	case action.GroupPage:
		var (
			threads   []domain.Thread
			subgroups []domain.Group
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			threads, err = src.Threads(gctx, target.ID)
			return err
		})
		g.Go(func() error {
			var err error
			subgroups, err = src.Subgroups(gctx, target.ID)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return page.NewGroupPage(target.ID, target.Path, username, threads, subgroups), nil

	case action.ThreadPage:
		content, err := src.ThreadContent(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		return page.NewThreadPage(target.Path, username, content), nil

	case action.UserPage:
		u, err := src.User(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		return page.NewUserPage(u), nil
	}
	return nil, fmt.Errorf("unknown page kind %s", target.Page)
}

// reply posts text and re-reads the thread so the reply shows up.
func (a App) reply(threadID, text string) tea.Cmd {
	src := a.deps.Source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		if err := src.Reply(ctx, threadID, text); err != nil {
			return replyFailedMsg{threadID: threadID, text: text, err: err}
		}
		content, err := src.ThreadContent(ctx, threadID)
		if err != nil {
			return replyFailedMsg{threadID: threadID, err: fmt.Errorf("reply posted, reloading thread: %w", err)}
		}
		return replyPostedMsg{threadID: threadID, content: content}
	}
}

// View renders the top page and the status bar.
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}
	w, h := a.pageSize()

	var body string
	if top, ok := a.stack.Top(); ok {
		body = top.View(w, h)
	} else {
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			a.spinner.View()+" Loading "+domain.RootGroupPath+"...")
	}
	return body + "\n" + a.statusLine(w)
}

func (a App) statusLine(width int) string {
	var line string
	switch {
	case a.pending:
		line = a.spinner.View() + " Loading..."
	case a.status != "" && a.statusErr:
		line = common.ErrorStyle.Render(a.status)
	case a.status != "":
		line = common.SuccessStyle.Render(a.status)
	default:
		line = common.StatusBarStyle.Render("tab: next pane • ↑↓←→: move • enter: open • esc: back • ctrl+c: quit")
	}
	return common.TruncateRight(line, width)
}
