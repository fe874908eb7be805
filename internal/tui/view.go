package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"minerctl/internal/catalog"
)

func (m model) View() string {
	if m.mode == modeQuitting {
		return "Shutting down...\n"
	}
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case modeHelpOverlay:
		return m.renderHelpOverlay()
	case modeOutputOverlay:
		return m.renderOutputOverlay()
	default:
		return m.renderDashboard()
	}
}

func (m model) renderDashboard() string {
	sections := []string{
		m.renderHeader(),
		m.renderTabBar(),
		m.renderForm(),
		m.renderActivityLog(),
		m.renderStatusBar(),
		m.renderFooter(),
	}
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m model) renderHeader() string {
	title := headerStyle.Render("minerctl · xmrig launcher")

	var chip string
	if m.minerRunning {
		chip = runningChipStyle.Render(fmt.Sprintf("%s mining (session %s)", m.spin.View(), m.launcher.SessionID()))
	} else {
		chip = idleChipStyle.Render("● idle")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", chip)
}

func (m model) renderTabBar() string {
	tabs := make([]string, 0, len(m.form.groups))
	for i, g := range m.form.groups {
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(g.title))
		} else {
			tabs = append(tabs, tabStyle.Render(g.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m model) renderForm() string {
	fields := m.activeFields()
	if len(fields) == 0 {
		return formPanelStyle.Render(dimStyle.Render("No options in this group."))
	}

	labelWidth := 0
	for _, fld := range fields {
		if w := runewidth.StringWidth(fld.opt.Label); w > labelWidth {
			labelWidth = w
		}
	}

	rows := make([]string, 0, len(fields))
	for i, fld := range fields {
		focused := i == m.cursor
		marker := "  "
		if focused {
			marker = cursorMarkerStyle.Render("▸ ")
		}

		label := runewidth.FillRight(fld.opt.Label, labelWidth)
		if focused {
			label = focusedLabelStyle.Render(label)
		} else {
			label = labelStyle.Render(label)
		}

		rows = append(rows, marker+label+"  "+m.renderFieldValue(fld, focused))
	}
	return formPanelStyle.Render(strings.Join(rows, "\n"))
}

func (m model) renderFieldValue(fld *field, focused bool) string {
	switch fld.opt.Kind {
	case catalog.KindText:
		if focused && m.editing {
			return fld.input.View()
		}
		if v := fld.input.Value(); v != "" {
			return valueStyle.Render(v)
		}
		return dimStyle.Render("(not set)")
	case catalog.KindCheckbox:
		if fld.checked {
			return valueStyle.Render("[x]")
		}
		return valueStyle.Render("[ ]")
	case catalog.KindDropdown:
		return valueStyle.Render(fmt.Sprintf("◂ %s ▸", fld.opt.Choices[fld.choice]))
	default:
		return ""
	}
}

func (m model) renderActivityLog() string {
	title := logPanelTitleStyle.Render("Activity")

	start := 0
	if len(m.activityLog) > activityPanelLines {
		start = len(m.activityLog) - activityPanelLines
	}
	lines := make([]string, 0, activityPanelLines+1)
	lines = append(lines, title)
	for _, raw := range m.activityLog[start:] {
		lines = append(lines, styleLogLine(raw, m.width))
	}
	if len(m.activityLog) == 0 {
		lines = append(lines, dimStyle.Render("(no activity yet)"))
	}
	return strings.Join(lines, "\n")
}

// styleLogLine picks a style from the embedded level tag and truncates the
// line to the terminal width.
func styleLogLine(raw string, width int) string {
	if width > 4 {
		raw = runewidth.Truncate(raw, width-2, "…")
	}
	switch {
	case strings.Contains(raw, "[ERROR]"):
		return logErrorStyle.Render(raw)
	case strings.Contains(raw, "[WARN]"):
		return logWarnStyle.Render(raw)
	case strings.Contains(raw, "[DEBUG]"):
		return logDebugStyle.Render(raw)
	default:
		return logLineStyle.Render(raw)
	}
}

func (m model) renderStatusBar() string {
	bg := statusBarDefaultBg
	switch m.statusType {
	case statusSuccess:
		bg = statusBarSuccessBg
	case statusWarning:
		bg = statusBarWarningBg
	case statusError:
		bg = statusBarErrorBg
	}
	bar := statusBarTextStyle.Background(bg).Width(max(0, m.width))
	return bar.Render(m.status)
}

func (m model) renderFooter() string {
	hints := []string{
		"tab: group", "↑/↓: option", "enter: edit/toggle", "s: save", "l: load",
		"r: run", "x: stop", "y: copy cmd", "o: output", "h: help", "q: quit",
	}
	return footerStyle.Render(strings.Join(hints, " • "))
}

func (m model) renderHelpOverlay() string {
	type hint struct{ key, desc string }
	sections := []struct {
		title string
		hints []hint
	}{
		{"Navigation", []hint{
			{"tab / shift+tab", "next / previous settings group"},
			{"↑/k, ↓/j", "move between options"},
		}},
		{"Editing", []hint{
			{"enter", "edit text field, toggle checkbox, cycle dropdown"},
			{"space", "toggle checkbox"},
			{"←/→", "previous / next dropdown choice"},
			{"esc", "leave text editing"},
		}},
		{"Actions", []hint{
			{"s", "save parameters to " + m.cfg.SettingsFile},
			{"l", "load parameters from " + m.cfg.SettingsFile},
			{"r", "run the miner"},
			{"x", "stop the miner"},
			{"y", "copy the assembled command line"},
			{"o", "show miner output (attached mode)"},
		}},
		{"General", []hint{
			{"h", "toggle this help"},
			{"q / ctrl+c", "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("minerctl keys"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n" + logPanelTitleStyle.Render(sec.title) + "\n")
		for _, h := range sec.hints {
			b.WriteString(fmt.Sprintf("  %s  %s\n", helpKeyStyle.Render(runewidth.FillRight(h.key, 16)), h.desc))
		}
	}

	overlay := helpOverlayStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

func (m model) renderOutputOverlay() string {
	title := logPanelTitleStyle.Render("Miner output")
	body := m.outputView.View()
	if len(m.outputLines) == 0 {
		body = dimStyle.Render("(no output captured; output streams here in attached launch mode)")
	}
	overlay := outputOverlayStyle.Render(title + "\n\n" + body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}
