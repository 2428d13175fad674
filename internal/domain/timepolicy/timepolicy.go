package timepolicy

import (
	"fmt"
	"time"
)

// ExpiryWindow is how long a booking may stay Pending before it expires.
const ExpiryWindow = 7 * 24 * time.Hour

type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Expired bool
}

func (r Remaining) String() string {
	if r.Expired {
		return "Expired"
	}
	return fmt.Sprintf("%dd %dh %dm left", r.Days, r.Hours, r.Minutes)
}

func ExpiresAt(bookedAt time.Time) time.Time {
	return bookedAt.Add(ExpiryWindow)
}

func IsExpired(bookedAt, now time.Time) bool {
	return !now.Before(ExpiresAt(bookedAt))
}

// RemainingTime floor-truncates the time left before a pending booking expires.
func RemainingTime(bookedAt, now time.Time) Remaining {
	if IsExpired(bookedAt, now) {
		return Remaining{Expired: true}
	}
	left := ExpiresAt(bookedAt).Sub(now)
	totalMinutes := int(left / time.Minute)
	return Remaining{
		Days:    totalMinutes / (24 * 60),
		Hours:   (totalMinutes / 60) % 24,
		Minutes: totalMinutes % 60,
	}
}

// EndDate adds calendar weeks, so DST shifts keep the wall-clock time.
func EndDate(startAt time.Time, durationWeeks int) time.Time {
	return startAt.AddDate(0, 0, 7*durationWeeks)
}
