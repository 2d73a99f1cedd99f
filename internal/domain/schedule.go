package domain

import (
	"fmt"
	"time"
)

// BackupSchedule defines when scheduled backups run.
type BackupSchedule string

const (
	ScheduleHourly  BackupSchedule = "hourly"
	ScheduleDaily   BackupSchedule = "daily"
	ScheduleWeekly  BackupSchedule = "weekly"
	ScheduleMonthly BackupSchedule = "monthly"
)

// IsValid reports whether the schedule is a known preset.
func (s BackupSchedule) IsValid() bool {
	switch s {
	case ScheduleHourly, ScheduleDaily, ScheduleWeekly, ScheduleMonthly:
		return true
	default:
		return false
	}
}

// NextAfter returns the first preset boundary strictly after now, in UTC.
// Hourly fires on the hour, daily at 02:00, weekly on Sunday at 03:00 and
// monthly on the 1st at 04:00.
func (s BackupSchedule) NextAfter(now time.Time) (time.Time, error) {
	now = now.UTC()
	y, m, d := now.Date()

	var next time.Time
	switch s {
	case ScheduleHourly:
		next = now.Truncate(time.Hour)
		if !next.After(now) {
			next = next.Add(time.Hour)
		}
	case ScheduleDaily:
		next = time.Date(y, m, d, 2, 0, 0, 0, time.UTC)
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
	case ScheduleWeekly:
		untilSunday := (7 - int(now.Weekday())) % 7
		next = time.Date(y, m, d+untilSunday, 3, 0, 0, 0, time.UTC)
		if !next.After(now) {
			next = next.AddDate(0, 0, 7)
		}
	case ScheduleMonthly:
		next = time.Date(y, m, 1, 4, 0, 0, 0, time.UTC)
		if !next.After(now) {
			next = next.AddDate(0, 1, 0)
		}
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported schedule preset %q", ErrInvalidArgument, s)
	}
	return next, nil
}

// ScheduledJob is a snapshot of one job registered with the scheduler.
type ScheduledJob struct {
	ID       string
	Name     string
	Schedule BackupSchedule
	LastRun  time.Time
	NextRun  time.Time
	Running  bool
}
