package commands

import (
	"fmt"
	"time"

	"github.com/julianstephens/bidaya/internal/models"
)

// Command is a named state transition. Apply must not mutate its input.
type Command interface {
	Name() string
	Apply(state models.AppState) (models.AppState, error)
}

type ToggleTaskCmd struct {
	ID string
}

func (c ToggleTaskCmd) Name() string { return fmt.Sprintf("toggle task %s", c.ID) }

func (c ToggleTaskCmd) Apply(state models.AppState) (models.AppState, error) {
	return ToggleTask(state, c.ID)
}

type ToggleBodyPartCmd struct {
	ID string
}

func (c ToggleBodyPartCmd) Name() string { return fmt.Sprintf("toggle body part %s", c.ID) }

func (c ToggleBodyPartCmd) Apply(state models.AppState) (models.AppState, error) {
	return ToggleBodyPart(state, c.ID)
}

type SetHeartDiseaseLevelCmd struct {
	ID    string
	Level int
}

func (c SetHeartDiseaseLevelCmd) Name() string {
	return fmt.Sprintf("set heart disease %s to %d", c.ID, c.Level)
}

func (c SetHeartDiseaseLevelCmd) Apply(state models.AppState) (models.AppState, error) {
	return SetHeartDiseaseLevel(state, c.ID, c.Level)
}

// UpdateWiridCountCmd sets Count when Delta is zero, otherwise adjusts by Delta
type UpdateWiridCountCmd struct {
	ID    string
	Count int
	Delta int
	Now   func() time.Time
}

func (c UpdateWiridCountCmd) Name() string {
	if c.Delta != 0 {
		return fmt.Sprintf("adjust wirid %s by %+d", c.ID, c.Delta)
	}
	return fmt.Sprintf("set wirid %s to %d", c.ID, c.Count)
}

func (c UpdateWiridCountCmd) Apply(state models.AppState) (models.AppState, error) {
	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}
	if c.Delta != 0 {
		return AdjustWiridCount(state, c.ID, c.Delta, now)
	}
	return UpdateWiridCount(state, c.ID, c.Count, now)
}

type TogglePrayerCmd struct {
	Prayer    models.PrayerName
	Performed bool
}

func (c TogglePrayerCmd) Name() string {
	return fmt.Sprintf("set prayer %s to %t", c.Prayer, c.Performed)
}

func (c TogglePrayerCmd) Apply(state models.AppState) (models.AppState, error) {
	return TogglePrayer(state, c.Prayer, c.Performed)
}

type ToggleProtocolCmd struct {
	ID string
}

func (c ToggleProtocolCmd) Name() string { return fmt.Sprintf("toggle protocol %s", c.ID) }

func (c ToggleProtocolCmd) Apply(state models.AppState) (models.AppState, error) {
	return ToggleProtocol(state, c.ID)
}
