package pace

import (
	"fmt"
	"time"
)

// DateLayout is how dates appear in pace messages.
const DateLayout = "Jan 2, 2006"

func message(status Status, buffer, remaining int, projected, target time.Time) string {
	switch status {
	case Ahead:
		return fmt.Sprintf("You're ahead of schedule by %s! At this pace you'll finish around %s.",
			days(buffer), projected.Format(DateLayout))
	case OnTrack:
		switch {
		case buffer > 0:
			return fmt.Sprintf("You're on track and %s ahead. Keep going to finish by %s.",
				days(buffer), target.Format(DateLayout))
		case buffer == 0:
			return fmt.Sprintf("You're perfectly on pace to finish by %s.", target.Format(DateLayout))
		default:
			return fmt.Sprintf("You're %s behind, which is still within a comfortable range. "+
				"A little extra practice this week will catch you up.", days(-buffer))
		}
	case Behind:
		return fmt.Sprintf("You're %s behind schedule with %s of lessons left. Let's set up a catch-up plan.",
			days(-buffer), days(remaining))
	default:
		return fmt.Sprintf("You're %s behind with %s of lessons left. Your timeline or goal needs to be revisited.",
			days(-buffer), days(remaining))
	}
}

func days(n int) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d day", n)
	}
	return fmt.Sprintf("%d days", n)
}
