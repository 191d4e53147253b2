package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jakhac/graph-algorithms/animate"
	"github.com/jakhac/graph-algorithms/config"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/metrics"
	"github.com/jakhac/graph-algorithms/pathfinding"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			Padding(0, 1)

	graphBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#333333")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)
)

// model is the bubbletea model of the visualizer. It is used by pointer so
// the player's finish callback can update it from inside Update.
type model struct {
	cfg    *config.Config
	log    *slog.Logger
	runner *pathfinding.Runner
	player *animate.Player
	canvas *canvas

	g       *core.Graph
	alg     pathfinding.Algorithm
	seed    int64
	instant bool

	keys keyMap
	help help.Model

	width, height int
	message       string
	err           error
}

// newModel builds the first graph and wires the player to the canvas.
// reg may be nil.
func newModel(cfg *config.Config, seed int64, sched animate.Scheduler, log *slog.Logger, reg *metrics.Registry) (*model, error) {
	g, err := buildGraph(cfg, seed)
	if err != nil {
		return nil, err
	}

	m := &model{
		cfg:     cfg,
		log:     log,
		canvas:  newCanvas(g),
		g:       g,
		alg:     cfg.AlgorithmValue(),
		seed:    seed,
		instant: cfg.Instant,
		keys:    keys,
		help:    help.New(),
	}

	popts := []animate.Option{
		animate.WithScheduler(sched),
		animate.WithBaseDelay(cfg.BaseDelay),
		animate.WithSpeed(cfg.SpeedFactor()),
		animate.WithLogger(log),
		animate.WithOnFinish(m.finished),
	}
	if reg != nil {
		popts = append(popts, animate.WithMetrics(reg))
	}
	m.runner = newRunner(log, reg)
	m.player = animate.NewPlayer(m.canvas, popts...)

	return m, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case callbackMsg:
		msg.fn()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			_ = m.player.Abort()
			return m, tea.Quit
		}
		m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Start):
		m.run()

	case key.Matches(msg, m.keys.Pause):
		switch m.player.Snapshot().State {
		case animate.Running:
			m.err = m.player.Pause()
		case animate.Paused:
			m.err = m.player.Resume()
		}

	case key.Matches(msg, m.keys.Step):
		if _, err := m.player.Step(); err != nil {
			m.err = err
		}

	case key.Matches(msg, m.keys.Abort):
		m.err = m.player.Abort()

	case key.Matches(msg, m.keys.Faster):
		m.shiftSpeed(1)

	case key.Matches(msg, m.keys.Slower):
		m.shiftSpeed(-1)

	case key.Matches(msg, m.keys.Instant):
		m.instant = !m.instant
		m.message = fmt.Sprintf("instant reveal %s", onOff(m.instant))

	case key.Matches(msg, m.keys.NextAlg):
		m.cycleAlgorithm(1)

	case key.Matches(msg, m.keys.PrevAlg):
		m.cycleAlgorithm(-1)

	case key.Matches(msg, m.keys.Regen):
		m.regenerate()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

// run solves the current graph and plays the replay.
func (m *model) run() {
	replay, err := m.runner.Solve(context.Background(), m.g, m.alg)
	if err != nil {
		m.err = err
		return
	}

	m.canvas.RedrawAll()
	m.message = fmt.Sprintf("running %s", m.alg.Title())
	if m.instant {
		m.err = m.player.RevealInstant(replay)
		return
	}
	m.err = m.player.Start(replay)
}

// finished is the player's OnFinish callback.
func (m *model) finished(s animate.Snapshot) {
	if s.State == animate.Aborted {
		m.message = "aborted"
		return
	}
	m.message = resultLine(s)
}

func (m *model) shiftSpeed(delta int) {
	name, f := animate.NextPreset(m.player.Speed(), delta)
	if err := m.player.SetSpeed(f); err != nil {
		m.err = err
		return
	}
	m.message = "speed: " + name
}

func (m *model) cycleAlgorithm(delta int) {
	all := pathfinding.All()
	i := (int(m.alg) + delta + len(all)) % len(all)
	m.alg = all[i]
	m.message = "algorithm: " + m.alg.Title()
}

// regenerate aborts any playback and draws a new graph from the next seed.
func (m *model) regenerate() {
	_ = m.player.Abort()
	g, err := buildGraph(m.cfg, m.seed+1)
	if err != nil {
		m.err = err
		return
	}
	m.seed++
	m.g = g
	m.canvas.setGraph(g)
	m.message = fmt.Sprintf("new graph, seed %d", m.seed)
	m.log.Debug("graph regenerated", "seed", m.seed, "nodes", g.NodeCount(), "edges", g.EdgeCount())
}

func (m *model) View() string {
	var s strings.Builder

	title := fmt.Sprintf("pathviz · %s · %s/%s · seed %d", m.alg.Title(), m.cfg.Graph.Kind, m.cfg.Graph.Size, m.seed)
	s.WriteString(titleStyle.Render(title))
	s.WriteString("\n")

	width, height := m.cfg.Graph.Width, m.cfg.Graph.Height
	if m.width > 2 && m.width-2 < width {
		width = m.width - 2
	}
	s.WriteString(graphBoxStyle.Render(m.canvas.render(width, height)))
	s.WriteString("\n")

	s.WriteString(statusStyle.Render(statusLine(m.canvas.Status(), m.instant)))
	s.WriteString("\n")

	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render("error: " + m.err.Error()))
	case m.message != "":
		s.WriteString(successStyle.Render(m.message))
	}
	s.WriteString("\n")

	s.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return s.String()
}

// statusLine renders the progress of a snapshot.
func statusLine(s animate.Snapshot, instant bool) string {
	parts := []string{
		s.State.String(),
		s.Mode.String(),
		fmt.Sprintf("steps %d/%d", s.Steps, s.Total),
		fmt.Sprintf("speed ×%.2f", s.Speed),
	}
	if s.Status != animate.StatusNone {
		parts = append(parts, s.Status.String())
	}
	if s.HasCost {
		parts = append(parts, fmt.Sprintf("cost %d", s.Cost))
	}
	if instant {
		parts = append(parts, "instant")
	}

	return strings.Join(parts, " | ")
}

// resultLine summarizes a terminated playback.
func resultLine(s animate.Snapshot) string {
	if s.HasCost {
		return fmt.Sprintf("%s in %d steps, cost %d", s.Status, s.Steps, s.Cost)
	}

	return fmt.Sprintf("%s in %d steps", s.Status, s.Steps)
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}
