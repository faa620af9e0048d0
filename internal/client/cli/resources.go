package cli

import (
	"context"
	"fmt"

	"github.com/safetytracker/tracker/internal/client/pages"
)

// Resources prints the emergency help directory.
func (a *App) Resources(ctx context.Context) error {
	return a.protect(ctx, func(ctx context.Context) error {
		a.mount(nil)
		fmt.Fprintln(a.out, "Emergency Resources")
		fmt.Fprintln(a.out, "If you're in immediate danger or need help right now, please use these resources:")
		for _, section := range pages.EmergencyResources() {
			fmt.Fprintf(a.out, "\n%s\n", section.Title)
			for _, r := range section.Resources {
				fmt.Fprintf(a.out, "  %s: %s\n    %s\n", r.Name, r.Contact, r.Description)
			}
		}
		fmt.Fprintf(a.out, "\nSafety note: %s\n", pages.SafetyNote)
		return nil
	})
}
