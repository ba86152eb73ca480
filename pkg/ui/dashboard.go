// Package ui is the demo consumer of the adaptive configuration engine: a
// bubbletea dashboard that rearranges itself according to the layout
// profile it is handed and displays the rendering budget the performance
// profile grants.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/Dicklesworthstone/viewadapt/pkg/profile"
	"github.com/Dicklesworthstone/viewadapt/pkg/responsive"
)

// ConfigMsg delivers a freshly published configuration to the program.
// The main package bridges Manager.Subscribe into p.Send with this type.
type ConfigMsg responsive.Config

// Model renders the current configuration and adapts its own chrome to
// the layout profile: persistent sidebar on large viewports, tab row on
// medium ones, hamburger header on small ones.
type Model struct {
	manager *responsive.Manager

	cfg    responsive.Config
	width  int
	height int
	detail viewport.Model
	ready  bool
}

// NewModel creates the dashboard model seeded from the manager's current
// configuration.
func NewModel(m *responsive.Manager) Model {
	return Model{
		manager: m,
		cfg:     m.Config(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "f":
			m.manager.ForceUpdate()
		case "o":
			m.manager.OptimizeForDevice()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := max(msg.Width-4, 10)
		h := max(msg.Height-10, 3)
		if !m.ready {
			m.detail = viewport.New(w, h)
			m.ready = true
		} else {
			m.detail.Width = w
			m.detail.Height = h
		}
		m.detail.SetContent(m.detailContent())
		// The terminal host hears SIGWINCH on its own, but bubbletea's
		// size message arrives on the frame boundary, so nudge anyway.
		m.manager.UpdateLayout()

	case ConfigMsg:
		m.cfg = responsive.Config(msg)
		if m.ready {
			m.detail.SetContent(m.detailContent())
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "measuring viewport..."
	}

	header := m.header()
	body := m.detail.View()
	status := m.statusLine()

	switch m.cfg.Layout.Navigation {
	case profile.NavSidebar:
		side := sidebarStyle.Height(m.detail.Height).Render(m.sidebar())
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, " ", body)
	case profile.NavTabs:
		header = lipgloss.JoinVertical(lipgloss.Left, header, m.tabRow())
	case profile.NavHamburger:
		header = lipgloss.JoinVertical(lipgloss.Left, header,
			labelStyle.Render("≡ menu (full-screen modals, touch targets "+
				fmt.Sprintf("%dpx)", m.cfg.Layout.TouchTargetPx)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m Model) header() string {
	title := titleStyle.Render("viewadapt")
	class := valueStyle.Render(fmt.Sprintf(" %s · %s ",
		m.cfg.Viewport, m.cfg.Orientation))

	state := m.manager.State()
	trans := ""
	if state.IsTransitioning {
		trans = transitionStyle.Render(" ⟳ transitioning")
	}

	line := title + class + trans
	return truncate.StringWithTail(line, uint(max(m.width, 10)), "…")
}

func (m Model) tabRow() string {
	tabs := []string{"overview", "performance", "capabilities"}
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		if i == 0 {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, tabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) sidebar() string {
	items := []string{"overview", "performance", "capabilities", "layout"}
	var b strings.Builder
	for i, item := range items {
		if i == 0 {
			b.WriteString(valueStyle.Render("▸ " + item))
		} else {
			b.WriteString(labelStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) detailContent() string {
	caps := m.cfg.Capabilities
	perf := m.cfg.Performance
	layout := m.cfg.Layout

	tierStyle := lipgloss.NewStyle().Bold(true).Foreground(tierColor(caps.Tier.String()))

	rows := []struct {
		label string
		value string
	}{
		{"device tier", tierStyle.Render(caps.Tier.String())},
		{"pixel ratio", fmt.Sprintf("%.2g (cap %.2g)", perf.PixelRatio, caps.MaxPixelRatio)},
		{"shadows", perf.Shadow.String()},
		{"particle budget", fmt.Sprintf("%d", perf.ParticleBudget)},
		{"antialiasing", onOff(perf.Antialiasing)},
		{"post-processing", onOff(perf.PostProcessing)},
		{"max LOD", fmt.Sprintf("%d", perf.MaxLOD)},
		{"memory estimate", fmt.Sprintf("%.3g GB", caps.EstimatedMemoryGB)},
		{"max texture", fmt.Sprintf("%d", caps.MaxTextureSize)},
		{"network", caps.NetworkSpeed.String()},
		{"touch", onOff(caps.TouchSupport)},
		{"navigation", layout.Navigation.String()},
		{"sidebar", onOff(layout.ShowSidebar)},
		{"gestures", onOff(layout.GesturesEnabled)},
	}

	labelWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for _, row := range rows {
		pad := strings.Repeat(" ", labelWidth-runewidth.StringWidth(row.label))
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(pad)
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}
	return panelStyle.Render(b.String())
}

func (m Model) statusLine() string {
	state := m.manager.State()
	dims := fmt.Sprintf("%d×%d @%.2g", state.Dimensions.Width,
		state.Dimensions.Height, state.Dimensions.PixelRatio)
	help := helpStyle.Render("f force · o optimize · q quit")
	line := labelStyle.Render(dims) + "  " + help
	return truncate.StringWithTail(line, uint(max(m.width, 10)), "…")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
