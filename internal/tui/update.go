package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/bidaya/internal/commands"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode != ModeBrowse {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.err = nil
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.section = (m.section + 1) % sectionCount
		case key.Matches(msg, m.keys.ShiftTab):
			m.section = (m.section - 1 + sectionCount) % sectionCount
		case key.Matches(msg, m.keys.Up):
			if m.cursor[m.section] > 0 {
				m.cursor[m.section]--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor[m.section] < len(m.items(m.session.State()))-1 {
				m.cursor[m.section]++
			}
		case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Edit):
			it, ok := m.selected()
			if !ok {
				break
			}
			if m.section == SectionHeart {
				m.newHeartForm(it)
				return m, m.form.Init()
			}
			if key.Matches(msg, m.keys.Toggle) {
				m.apply(m.toggleCommand(it))
			}
		case key.Matches(msg, m.keys.Inc), key.Matches(msg, m.keys.Dec):
			it, ok := m.selected()
			if !ok || m.section != SectionWirid {
				break
			}
			delta := 1
			if key.Matches(msg, m.keys.Dec) {
				delta = -1
			}
			m.apply(commands.UpdateWiridCountCmd{ID: it.id, Delta: delta, Now: m.now})
		case key.Matches(msg, m.keys.Reset):
			m.newResetForm()
			return m, m.form.Init()
		}
	}
	return m, nil
}

func (m *Model) apply(cmd commands.Command) {
	if cmd == nil {
		return
	}
	if _, err := m.session.Execute(m.ctx, cmd); err != nil {
		m.err = err
		return
	}
	m.status = cmd.Name()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.completeForm()
	case huh.StateAborted:
		m.closeForm()
	}
	return m, cmd
}

// completeForm runs the action of the finished form
func (m *Model) completeForm() {
	switch m.mode {
	case ModeHeartForm:
		m.apply(commands.SetHeartDiseaseLevelCmd{ID: m.heart.ID, Level: m.heart.Level})
	case ModeConfirmReset:
		if m.reset.Confirmed {
			if _, err := m.session.Reset(m.ctx, m.resetter); err != nil {
				m.err = err
			} else {
				m.status = "reset"
				m.cursor = [sectionCount]int{}
			}
		}
	}
	m.closeForm()
}

func (m *Model) closeForm() {
	m.mode = ModeBrowse
	m.form = nil
	m.heart = nil
	m.reset = nil
}
