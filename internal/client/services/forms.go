package services

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/common"
)

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// ValidateCheckIn checks a check-in form before it is sent.
func ValidateCheckIn(in models.CheckInInput) error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.Category, validation.Required, validation.In(stringsToAny(models.CheckInCategories)...)),
		validation.Field(&in.DayType, validation.Required, validation.In(stringsToAny(models.DayTypes)...)),
		validation.Field(&in.ReactionLevel, validation.Required, validation.Min(1), validation.Max(10)),
		validation.Field(&in.CopingAction, validation.Required),
		validation.Field(&in.Effectiveness, validation.Required, validation.Min(1), validation.Max(10)),
	)
	return common.Invalid(err)
}

// ValidateStory checks the text fields of a story form. The author is
// checked separately when it is resolved.
func ValidateStory(title, content string) error {
	err := validation.Errors{
		"title":   validation.Validate(title, validation.Required, validation.Length(1, 200)),
		"content": validation.Validate(content, validation.Required),
	}.Filter()
	return common.Invalid(err)
}
