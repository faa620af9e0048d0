package models

import "time"

// Accepted values for CheckIn.Category.
var CheckInCategories = []string{"Physical", "Emotional", "Financial", "Social", "Work", "Other"}

// Accepted values for CheckIn.DayType.
var DayTypes = []string{"Challenging Days", "Normal Days - Not Bad or Good", "Good Days"}

type CheckIn struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	DayType       string    `json:"day_type"`
	ReactionLevel int       `json:"reaction_level"`
	CopingAction  string    `json:"coping_action"`
	Effectiveness int       `json:"effectiveness"`
	RelaxedToday  string    `json:"relaxed_today,omitempty"`
	Owner         *Owner    `json:"owner,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (c CheckIn) OwnerID() (int64, bool) {
	if c.Owner == nil {
		return 0, false
	}
	return c.Owner.ID, true
}

// Input returns the writable fields of c.
func (c CheckIn) Input() CheckInInput {
	return CheckInInput{
		Title:         c.Title,
		Description:   c.Description,
		Category:      c.Category,
		DayType:       c.DayType,
		ReactionLevel: c.ReactionLevel,
		CopingAction:  c.CopingAction,
		Effectiveness: c.Effectiveness,
		RelaxedToday:  c.RelaxedToday,
	}
}

// CheckInInput is the write payload for check-ins; id and owner are assigned
// by the backend.
type CheckInInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	DayType       string `json:"day_type"`
	ReactionLevel int    `json:"reaction_level"`
	CopingAction  string `json:"coping_action"`
	Effectiveness int    `json:"effectiveness"`
	RelaxedToday  string `json:"relaxed_today,omitempty"`
}
