package field

import (
	"strconv"
	"strings"

	"github.com/uyouii/rangefield/utils"
)

type DraftState int

const (
	DraftCommitted   DraftState = 0
	DraftUncommitted DraftState = 1
	DraftValidated   DraftState = 2
)

func (s DraftState) String() string {
	switch s {
	case DraftUncommitted:
		return "uncommitted"
	case DraftValidated:
		return "validated"
	default:
		return "committed"
	}
}

// Draft holds the text of a numeric input between keystrokes and its commit.
// Edit moves it to DraftUncommitted, a successful Commit to DraftValidated,
// and Sync with the value actually written back to DraftCommitted.
type Draft struct {
	text      string
	committed *float64
	state     DraftState
}

func NewDraft(v *float64) *Draft {
	d := &Draft{}
	d.Sync(v)
	return d
}

func (d *Draft) Text() string {
	return d.text
}

func (d *Draft) State() DraftState {
	return d.state
}

func (d *Draft) Edit(text string) {
	d.text = text
	d.state = DraftUncommitted
}

// Commit parses the draft. Empty text commits an absent value (nil, true).
// Text that is not a finite number reverts to the last committed value and returns false.
func (d *Draft) Commit() (*float64, bool) {
	trimmed := strings.TrimSpace(d.text)
	if trimmed == "" {
		d.state = DraftValidated
		return nil, true
	}

	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || !utils.IsFinite(n) {
		d.Sync(d.committed)
		return nil, false
	}

	d.state = DraftValidated
	return &n, true
}

// Sync replaces the draft with the stored value.
func (d *Draft) Sync(v *float64) {
	if v == nil {
		d.committed = nil
	} else {
		d.committed = utils.Float(*v)
	}
	d.text = formatValue(v)
	d.state = DraftCommitted
}

func formatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
