package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/bidaya/internal/scoring"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.mode {
	case ModeHeartForm, ModeConfirmReset:
		content = m.form.View()
	default:
		content = m.viewSection()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewTabs(),
		docStyle.Render(content),
		m.viewStatus(),
		m.help.View(m.keys),
	)
	return ui
}

func (m Model) viewHeader() string {
	state := m.session.State()
	r := scoring.Compute(state)
	stats := state.Stats()

	style := batteryStyle
	if r.Battery < 50 {
		style = lowBatteryStyle
	}
	header := style.Render(fmt.Sprintf("Cahaya Amal %d%%", r.Battery)) +
		dimStyle.Render(fmt.Sprintf("  Lv %d  XP %d/%d  Streak %d  %s",
			stats.Level, stats.XP, scoring.XPForNextLevel(stats.Level), stats.Streak, state.LastResetDate))

	breakdown := dimStyle.Render(fmt.Sprintf("sholat %.0f  adab %.0f  muhasabah %.0f  network %.0f  wirid %.0f  qalb -%d%%",
		r.Breakdown.Prayer, r.Breakdown.Routine, r.Breakdown.Muhasabah, r.Breakdown.Adab, r.Breakdown.Wirid, r.CorruptionPct))

	lines := []string{header, breakdown}
	if r.HasadWarning {
		lines = append(lines, warnStyle.Render("⚠ Hasad is burning your deeds"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for s := Section(0); s < sectionCount; s++ {
		if m.section == s {
			tabs = append(tabs, activeTabStyle.Render(s.String()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(s.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSection() string {
	var b strings.Builder
	for i, it := range m.items(m.session.State()) {
		cursor := "  "
		if i == m.cursor[m.section] {
			cursor = cursorStyle.Render("> ")
		}
		mark := "○"
		title := it.title
		if it.done {
			mark = "✓"
			if m.section != SectionHeart && m.section != SectionMuhasabah {
				title = doneStyle.Render(title)
			}
		}
		line := fmt.Sprintf("%s%s %s", cursor, mark, title)
		if it.detail != "" {
			line += "  " + dimStyle.Render(it.detail)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	return dimStyle.Render(m.status)
}
