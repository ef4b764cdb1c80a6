// Package tui is the interactive daily dashboard
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/bidaya/internal/commands"
	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/session"
)

type Section int

const (
	SectionPrayer Section = iota
	SectionTasks
	SectionMuhasabah
	SectionHeart
	SectionWirid
	SectionAdab
	sectionCount
)

var sectionTitles = [...]string{"Sholat", "Adab", "Muhasabah", "Qalb", "Wirid", "Network"}

func (s Section) String() string { return sectionTitles[s] }

type Mode int

const (
	ModeBrowse Mode = iota
	ModeHeartForm
	ModeConfirmReset
)

// item is one selectable row of a section
type item struct {
	id     string
	title  string
	detail string
	done   bool
}

// Forms are held by pointer so huh's bound values survive model copies
type heartForm struct {
	ID    string
	Level int
}

type resetForm struct {
	Confirmed bool
}

type Model struct {
	ctx      context.Context
	session  *session.Session
	resetter session.Resetter
	now      func() time.Time

	section Section
	cursor  [sectionCount]int
	mode    Mode
	keys    KeyMap
	help    help.Model

	form  *huh.Form
	heart *heartForm
	reset *resetForm

	status   string
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(ctx context.Context, s *session.Session, r session.Resetter, now func() time.Time) Model {
	return Model{
		ctx:      ctx,
		session:  s,
		resetter: r,
		now:      now,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// items lists the rows of the current section from state
func (m Model) items(state models.AppState) []item {
	var out []item
	switch m.section {
	case SectionPrayer:
		var today models.PrayerLog
		if state.TodayPrayer != nil {
			today = *state.TodayPrayer
		}
		for _, name := range models.PrayerNames {
			out = append(out, item{id: string(name), title: string(name), done: today.Get(name)})
		}
	case SectionTasks:
		for _, t := range state.Tasks {
			out = append(out, item{id: t.ID, title: t.Title, detail: string(t.TimeOfDay), done: t.Completed})
		}
	case SectionMuhasabah:
		for _, b := range state.BodyScans {
			detail := "safe"
			if b.ErrorCommitted {
				detail = "lapse"
			}
			out = append(out, item{id: b.ID, title: b.Part, detail: detail, done: !b.ErrorCommitted})
		}
	case SectionHeart:
		for _, h := range state.HeartDiseases {
			out = append(out, item{id: h.ID, title: h.Name, detail: fmt.Sprintf("%d/%d", h.Level, constants.MaxDiseaseLevel), done: h.Level <= constants.MinDiseaseLevel})
		}
	case SectionWirid:
		for _, w := range state.WiridLogs {
			out = append(out, item{id: w.ID, title: w.Name, detail: fmt.Sprintf("%d/%d", w.Count, w.Target), done: w.Reached()})
		}
	case SectionAdab:
		for _, p := range state.NetworkProtocols {
			out = append(out, item{id: p.ID, title: p.Title, detail: string(p.Target), done: p.Completed})
		}
	}
	return out
}

func (m Model) selected() (item, bool) {
	items := m.items(m.session.State())
	i := m.cursor[m.section]
	if i < 0 || i >= len(items) {
		return item{}, false
	}
	return items[i], true
}

// toggleCommand maps the selected row to the command space should run
func (m Model) toggleCommand(it item) commands.Command {
	switch m.section {
	case SectionPrayer:
		return commands.TogglePrayerCmd{Prayer: models.PrayerName(it.id), Performed: !it.done}
	case SectionTasks:
		return commands.ToggleTaskCmd{ID: it.id}
	case SectionMuhasabah:
		return commands.ToggleBodyPartCmd{ID: it.id}
	case SectionAdab:
		return commands.ToggleProtocolCmd{ID: it.id}
	case SectionWirid:
		return commands.UpdateWiridCountCmd{ID: it.id, Delta: 1, Now: m.now}
	}
	return nil
}

func (m *Model) newHeartForm(it item) {
	m.heart = &heartForm{ID: it.id, Level: constants.MinDiseaseLevel}
	for _, h := range m.session.State().HeartDiseases {
		if h.ID == it.id {
			m.heart.Level = h.Level
		}
	}
	var options []huh.Option[int]
	for l := constants.MinDiseaseLevel; l <= constants.MaxDiseaseLevel; l++ {
		options = append(options, huh.NewOption(fmt.Sprintf("%d", l), l))
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("How strong is %s today?", it.title)).
				Options(options...).
				Value(&m.heart.Level),
		),
	)
	m.mode = ModeHeartForm
}

func (m *Model) newResetForm() {
	m.reset = &resetForm{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset everything?").
				Description("Checklists, heart levels, XP, level and streak return to the start.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(&m.reset.Confirmed),
		),
	)
	m.mode = ModeConfirmReset
}
