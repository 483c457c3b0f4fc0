package schedule

import (
	"fmt"
	"sort"
	"time"

	"pilates-studio/app/models"
)

// Template describes one slot of the fixed weekly plan.
type Template struct {
	Day        models.DayOfWeek
	Time       string // "15:04"
	Title      string
	Instructor string
	Capacity   int
}

// WeeklyPlan is the studio's fixed schedule, Monday through Friday. Friday
// currently has no classes.
var WeeklyPlan = []Template{
	{Day: models.Monday, Time: "11:30", Title: "Pilates", Instructor: "Melisa", Capacity: 10},
	{Day: models.Monday, Time: "17:00", Title: "Pilates", Instructor: "Melisa", Capacity: 10},
	{Day: models.Tuesday, Time: "20:00", Title: "Pilates", Instructor: "Isabel", Capacity: 10},
	{Day: models.Wednesday, Time: "11:30", Title: "Pilates", Instructor: "Melisa", Capacity: 10},
	{Day: models.Wednesday, Time: "17:00", Title: "Pilates", Instructor: "Melisa", Capacity: 10},
	{Day: models.Thursday, Time: "20:00", Title: "Pilates", Instructor: "Isabel", Capacity: 10},
}

// ISO weekday numbers, Monday = 1.
var dayNumber = map[models.DayOfWeek]int{
	models.Monday:    1,
	models.Tuesday:   2,
	models.Wednesday: 3,
	models.Thursday:  4,
	models.Friday:    5,
	models.Saturday:  6,
	models.Sunday:    7,
}

// Generate builds the session list from the weekly plan, one session per
// template, each placed on its next occurrence relative to now. A slot whose
// computed time has already passed moves forward exactly one week. The result
// is sorted by start time and is the process-lifetime schedule: there is no
// regeneration.
func Generate(now time.Time, plan []Template) ([]models.Session, error) {
	sessions := make([]models.Session, 0, len(plan))

	today := int(now.Weekday())
	if today == 0 {
		today = 7 // Sunday
	}

	for i, tpl := range plan {
		at, err := time.Parse("15:04", tpl.Time)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q in weekly plan: %w", tpl.Time, err)
		}

		diff := dayNumber[tpl.Day] - today
		starts := time.Date(now.Year(), now.Month(), now.Day()+diff,
			at.Hour(), at.Minute(), 0, 0, now.Location())
		if starts.Before(now) {
			starts = starts.AddDate(0, 0, 7)
		}

		sessions = append(sessions, models.Session{
			ID:         i + 1,
			Day:        tpl.Day,
			Time:       tpl.Time,
			Title:      tpl.Title,
			Instructor: tpl.Instructor,
			Capacity:   tpl.Capacity,
			StartsAt:   starts,
		})
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartsAt.Before(sessions[j].StartsAt)
	})

	return sessions, nil
}
