package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LucasPin45/FiscalizaGov/internal/browser"
	"github.com/LucasPin45/FiscalizaGov/internal/notify"
	"github.com/LucasPin45/FiscalizaGov/internal/pipeline"
	"github.com/LucasPin45/FiscalizaGov/internal/score"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusPane int

const (
	focusList focusPane = iota
	focusDetail
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeHelp
)

// Notifier sends a single message about one publication. Nil means
// Telegram is not configured.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type App struct {
	pipe *pipeline.Pipeline
	opts pipeline.Options

	items  []score.RankedItem
	query  string
	cursor int
	focus  focusPane
	mode   mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model

	notifier Notifier

	// State
	refreshing   bool
	detailScroll int
	notice       string
	err          error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Pipe     *pipeline.Pipeline
	Opts     pipeline.Options
	Notifier Notifier
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Buscar publicações..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		pipe:        opts.Pipe,
		opts:        opts.Opts,
		notifier:    opts.Notifier,
		searchInput: ti,
		spinner:     sp,
	}
}

func (a *App) Init() tea.Cmd {
	a.refreshing = true
	return tea.Batch(a.runPipelineCmd(false), a.spinner.Tick)
}

// runPipelineCmd captures the run options into the closure so a later
// keypress cannot race the in-flight run.
func (a *App) runPipelineCmd(refresh bool) tea.Cmd {
	pipe := a.pipe
	opts := a.opts
	opts.Refresh = refresh
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()
		items, err := pipe.Run(ctx, opts)
		if err != nil {
			return runErrMsg{err: err}
		}
		return resultsMsg{items: items}
	}
}

func (a *App) notifyCmd(item score.RankedItem) tea.Cmd {
	n := a.notifier
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		return notifyDoneMsg{err: n.Send(ctx, notify.ItemMessage(item))}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return runErrMsg{err: err}
		}
		return nil
	}
}

// visible returns the ranked items narrowed by the current search
// query. Ranking order is preserved.
func (a *App) visible() []score.RankedItem {
	q := strings.ToLower(strings.TrimSpace(a.query))
	if q == "" {
		return a.items
	}
	var out []score.RankedItem
	for _, it := range a.items {
		if strings.Contains(strings.ToLower(it.SearchText()), q) {
			out = append(out, it)
		}
	}
	return out
}

func (a *App) selected() *score.RankedItem {
	items := a.visible()
	if len(items) == 0 || a.cursor >= len(items) {
		return nil
	}
	return &items[a.cursor]
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		a.notice = ""
		return a.handleKey(msg)

	case resultsMsg:
		a.refreshing = false
		a.items = msg.items
		if a.cursor >= len(a.visible()) {
			a.cursor = max(0, len(a.visible())-1)
		}
		return a, nil

	case runErrMsg:
		a.refreshing = false
		a.err = msg.err
		return a, nil

	case notifyDoneMsg:
		if msg.err != nil {
			a.err = msg.err
		} else {
			a.notice = "enviado no Telegram"
		}
		return a, nil

	case spinner.TickMsg:
		if a.refreshing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	// Normal mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.visible())-1 {
			a.cursor++
			a.detailScroll = 0
		} else if a.focus == focusDetail {
			a.detailScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.detailScroll = 0
		} else if a.focus == focusDetail && a.detailScroll > 0 {
			a.detailScroll--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusDetail
		} else {
			a.focus = focusList
		}
		return a, nil
	case "o", "enter":
		if it := a.selected(); it != nil && it.Link != "" {
			return a, openBrowserCmd(it.Link)
		}
		return a, nil
	case "t":
		if a.notifier == nil {
			a.err = fmt.Errorf("Telegram não configurado")
			return a, nil
		}
		if it := a.selected(); it != nil {
			return a, a.notifyCmd(*it)
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.SetValue(a.query)
		a.searchInput.Focus()
		return a, textinput.Blink
	case "r":
		if !a.refreshing {
			a.refreshing = true
			return a, tea.Batch(a.runPipelineCmd(true), a.spinner.Tick)
		}
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.query = ""
		a.cursor = 0
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.query = a.searchInput.Value()
		a.cursor = 0
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorPrimary).Render("  FiscalizaGov")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	// Layout calculations
	headerHeight := 1
	searchHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - searchHeight - statusHeight - 4 // borders

	listWidth := int(float64(a.width) * 0.4)
	detailWidth := a.width - listWidth - 1 // gap

	if contentHeight < 3 {
		contentHeight = 3
	}

	// Header
	headerLeft := headerStyle.Render("FiscalizaGov · DOU")
	headerRight := headerDateStyle.Render(a.opts.Date.Format("02/01/2006"))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Search bar line
	searchLine := ""
	if a.mode == modeSearch {
		searchLine = a.searchInput.View()
	} else if a.query != "" {
		searchLine = helpDimStyle.Render(" filtro: " + a.query + "  (/ editar, esc limpar)")
	}

	items := a.visible()

	// List pane
	innerListW := listWidth - 4 // border + padding
	listContent := renderList(items, a.cursor, contentHeight, innerListW)

	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	// Detail pane
	innerDetailW := detailWidth - 4
	detailContent := renderDetail(a.selected(), innerDetailW, contentHeight, a.detailScroll)

	var detailPane string
	if a.focus == focusDetail {
		detailPane = detailPaneActiveStyle.Width(detailWidth - 2).Height(contentHeight).Render(detailContent)
	} else {
		detailPane = detailPaneStyle.Width(detailWidth - 2).Height(contentHeight).Render(detailContent)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	// Status bar
	status := renderStatusBar(len(items), a.opts.Sections, a.width, a.mode == modeSearch, a.refreshing, a.notice)

	if a.refreshing {
		status = a.spinner.View() + " " + status
	}
	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorAlert).Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, searchLine, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render("FiscalizaGov")
	dim := helpDimStyle

	help := title + dim.Render(" — Atalhos de teclado") + "\n\n" +
		dim.Render("Navegação") + "\n" +
		"  j/k, ↑/↓     Navegar pela lista\n" +
		"  tab           Alternar foco entre lista e detalhe\n\n" +
		dim.Render("Ações") + "\n" +
		"  o, enter      Abrir publicação no navegador\n" +
		"  t             Enviar publicação no Telegram\n" +
		"  r             Buscar de novo (ignora o cache)\n" +
		"  /             Buscar nas publicações exibidas\n\n" +
		dim.Render("Geral") + "\n" +
		"  ?             Abrir/fechar esta ajuda\n" +
		"  q, ctrl+c    Sair"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
