package main

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/niri-layout/internal/clock"
	"github.com/Gaurav-Gosain/niri-layout/internal/column"
	"github.com/Gaurav-Gosain/niri-layout/internal/config"
	"github.com/Gaurav-Gosain/niri-layout/internal/geometry"
	"github.com/Gaurav-Gosain/niri-layout/internal/layout"
	"github.com/Gaurav-Gosain/niri-layout/internal/options"
	"github.com/Gaurav-Gosain/niri-layout/internal/scrollingspace"
	"github.com/Gaurav-Gosain/niri-layout/internal/tile"
	"github.com/Gaurav-Gosain/niri-layout/internal/wire"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Paint the layout engine's response to keyboard-added windows in a terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tea.NewProgram(newDemoModel(), tea.WithAltScreen()).Run()
			return err
		},
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// demoModel is a read-only visualizer: it walks the layout engine's own
// TilesWithRenderPositions each tick and paints a box per tile, exercising
// the renderer contract against a terminal sink instead of
// a GPU one. Keys add demo windows and exercise a handful of core
// operations; there is no configure/ack round-trip here, so each
// FakeWindow keeps the size it was created with.
type demoModel struct {
	clk     *clock.Clock
	opts    *options.Options
	l       *layout.Layout
	profile colorprofile.Profile
	width   int
	height  int
	next    int
}

func newDemoModel() *demoModel {
	clk := clock.New()
	opts, err := config.Load()
	if err != nil {
		log.Default().Warn("falling back to built-in defaults", "err", err)
		opts = options.Default()
	}
	l := layout.New(clk, opts, nil)
	l.AddOutput(layout.Output{ID: wire.NewOutputID(), Area: geometry.Rect{W: 120, H: 34}})
	profile := colorprofile.Detect(os.Stdout, os.Environ())
	return &demoModel{clk: clk, opts: opts, l: l, profile: profile, width: 120, height: 34}
}

// activeHighlight picks the active-tile border color for the detected
// color profile: true color gets the usual green, anything more limited
// falls back to the nearest ANSI basic color so the border still reads as
// "active" on a dumb terminal instead of rendering as plain text.
func (m *demoModel) activeHighlight() lipgloss.Color {
	if m.profile <= colorprofile.ANSI {
		return lipgloss.Color("2")
	}
	return lipgloss.Color("10")
}

func (m *demoModel) Init() tea.Cmd { return tickCmd() }

func (m *demoModel) scrolling() *scrollingspace.ScrollingSpace {
	mon := m.l.Set().ActiveMonitor()
	if mon == nil {
		return nil
	}
	return mon.ActiveWorkspace().Scrolling()
}

func (m *demoModel) addWindow() {
	m.next++
	t := tile.New(wire.NewFakeWindow(40, 20), m.clk, m.opts, 1)
	m.l.AddWindowToActiveWorkspace(t, column.ProportionWidth(0.33), false)
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := m.scrolling()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.l.AdvanceAnimations(m.clk.Now())
		return m, tickCmd()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "n":
			m.addWindow()
		case "h":
			if s != nil {
				s.FocusLeft()
			}
		case "l":
			if s != nil {
				s.FocusRight()
			}
		case "H":
			if s != nil {
				s.MoveLeft()
			}
		case "L":
			if s != nil {
				s.MoveRight()
			}
		case "c":
			if s != nil {
				s.ConsumeOrExpelWindowRight()
			}
		case "e":
			if s != nil {
				s.ConsumeOrExpelWindowLeft()
			}
		case "f":
			if s != nil {
				if active := s.ActiveColumn(); active != nil {
					id := active.ActiveTile().Window().ID()
					s.SetFullscreen(id, !active.IsPendingFullscreen())
				}
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *demoModel) View() tea.View {
	var view tea.View
	view.SetContent(m.render())
	view.AltScreen = true
	return view
}

func (m *demoModel) render() string {
	s := m.scrolling()
	if s == nil || s.IsEmpty() {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			"niri-layout demo — press n to add a window, q to quit")
	}

	boxStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	activeBoxStyle := boxStyle.BorderForeground(m.activeHighlight())

	canvas := lipgloss.NewCanvas()
	var layers []*lipgloss.Layer
	for _, rp := range s.TilesWithRenderPositions() {
		size := rp.Tile.TileSize()
		style := boxStyle
		if rp.IsActive {
			style = activeBoxStyle
		}
		label := fmt.Sprintf("win %d\n%.0fx%.0f", rp.Tile.Window().ID(), size.W, size.H)
		box := style.Width(int(size.W) - 2).Height(int(size.H) - 2).Render(label)
		layers = append(layers, lipgloss.NewLayer(box).X(int(rp.Position.X)).Y(int(rp.Position.Y)))
	}
	canvas.AddLayers(layers...)

	help := lipgloss.NewStyle().Faint(true).Render(
		"n:add  h/l:focus  H/L:move  c:consume  e:expel  f:fullscreen  q:quit")
	return canvas.Render() + "\n" + help
}
