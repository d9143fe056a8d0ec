package testutil

import "github.com/akyairhashvil/dialtimer/internal/models"

// TimerBuilder provides fluent API for creating test timers.
type TimerBuilder struct {
	timer models.Timer
}

func NewTimer() *TimerBuilder {
	return &TimerBuilder{
		timer: models.NewTimerFromDraft(models.Draft{
			Title:         "Test Timer",
			Color:         models.ColorBlue,
			TotalDuration: 600,
		}),
	}
}

func (b *TimerBuilder) WithID(id string) *TimerBuilder {
	b.timer.ID = id
	return b
}

func (b *TimerBuilder) WithTitle(title string) *TimerBuilder {
	b.timer.Title = title
	return b
}

// WithDuration sets both total and remaining time.
func (b *TimerBuilder) WithDuration(seconds int) *TimerBuilder {
	b.timer.TotalDuration = seconds
	b.timer.RemainingTime = seconds
	return b
}

func (b *TimerBuilder) WithRemaining(seconds int) *TimerBuilder {
	b.timer.RemainingTime = seconds
	return b
}

func (b *TimerBuilder) WithBaseline(seconds int) *TimerBuilder {
	b.timer.UserBaseline = &seconds
	return b
}

func (b *TimerBuilder) WithColor(c models.ColorTag) *TimerBuilder {
	b.timer.Color = c
	return b
}

func (b *TimerBuilder) WithFlags(f models.Flags) *TimerBuilder {
	b.timer.Flags = f
	return b
}

func (b *TimerBuilder) Build() models.Timer {
	return b.timer.Clone()
}

// DraftBuilder provides fluent API for creating test drafts.
type DraftBuilder struct {
	draft models.Draft
}

func NewDraft() *DraftBuilder {
	return &DraftBuilder{
		draft: models.Draft{
			Title:         "Draft Timer",
			Color:         models.ColorGreen,
			TotalDuration: 300,
		},
	}
}

func (b *DraftBuilder) WithTitle(title string) *DraftBuilder {
	b.draft.Title = title
	return b
}

func (b *DraftBuilder) WithDuration(seconds int) *DraftBuilder {
	b.draft.TotalDuration = seconds
	return b
}

func (b *DraftBuilder) WithColor(c models.ColorTag) *DraftBuilder {
	b.draft.Color = c
	return b
}

func (b *DraftBuilder) WithFlags(f models.Flags) *DraftBuilder {
	b.draft.Flags = f
	return b
}

func (b *DraftBuilder) Build() models.Draft {
	return b.draft
}
