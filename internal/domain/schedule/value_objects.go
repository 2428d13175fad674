package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidWeekday   = errors.New("invalid weekday")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidCapacity  = errors.New("participant limit cannot be negative")
)

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func Weekdays() []Weekday {
	out := make([]Weekday, len(weekdays))
	copy(out, weekdays)
	return out
}

// ParseWeekday is case-insensitive and returns the canonical spelling.
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range weekdays {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

func (d Weekday) String() string { return string(d) }

// Index orders Monday first.
func (d Weekday) Index() int {
	for i, w := range weekdays {
		if w == d {
			return i
		}
	}
	return -1
}

// TimeOfDay is a wall-clock start time within a day, minute precision.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay accepts "HH:MM" (24h). "9:00" is tolerated.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || hh == "" || len(hh) > 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return NewTimeOfDay(h, m)
}

func (t TimeOfDay) Hour() int   { return t.minutes / 60 }
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }

// SessionKey identifies one cell of a trainer's weekly timetable.
type SessionKey struct {
	TrainerID uuid.UUID
	Day       Weekday
	Time      TimeOfDay
}

func NewSessionKey(trainerID uuid.UUID, day, timeOfDay string) (SessionKey, error) {
	d, err := ParseWeekday(day)
	if err != nil {
		return SessionKey{}, err
	}
	t, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return SessionKey{}, err
	}
	return SessionKey{TrainerID: trainerID, Day: d, Time: t}, nil
}

// ID renders the composite "trainer-day-time" identifier.
func (k SessionKey) ID() string {
	return fmt.Sprintf("%s-%s-%s", k.TrainerID, k.Day, k.Time)
}

func (k SessionKey) String() string { return k.ID() }

// Less orders keys by trainer, weekday, then time. Row locks are taken in this order.
func (k SessionKey) Less(other SessionKey) bool {
	if k.TrainerID != other.TrainerID {
		return k.TrainerID.String() < other.TrainerID.String()
	}
	if k.Day != other.Day {
		return k.Day.Index() < other.Day.Index()
	}
	return k.Time.Before(other.Time)
}

// ParseSessionID splits from the right so hyphenated trainer ids survive the round trip.
func ParseSessionID(id string) (SessionKey, error) {
	id = strings.TrimSpace(id)
	timeSep := strings.LastIndex(id, "-")
	if timeSep <= 0 {
		return SessionKey{}, fmt.Errorf("%w: %q", ErrInvalidSessionID, id)
	}
	daySep := strings.LastIndex(id[:timeSep], "-")
	if daySep <= 0 {
		return SessionKey{}, fmt.Errorf("%w: %q", ErrInvalidSessionID, id)
	}
	trainerID, err := uuid.Parse(id[:daySep])
	if err != nil {
		return SessionKey{}, fmt.Errorf("%w: %q", ErrInvalidSessionID, id)
	}
	key, err := NewSessionKey(trainerID, id[daySep+1:timeSep], id[timeSep+1:])
	if err != nil {
		return SessionKey{}, fmt.Errorf("%w: %q", ErrInvalidSessionID, id)
	}
	return key, nil
}

// ParseSessionIDs parses a non-empty list of unique ids preserving order.
func ParseSessionIDs(ids []string) ([]SessionKey, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one session id is required", ErrInvalidSessionID)
	}
	seen := make(map[SessionKey]struct{}, len(ids))
	keys := make([]SessionKey, 0, len(ids))
	for _, id := range ids {
		key, err := ParseSessionID(id)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate session id %q", ErrInvalidSessionID, id)
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys, nil
}

func KeyIDs(keys []SessionKey) []string {
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.ID()
	}
	return ids
}

// Capacity is a participant limit, finite or unlimited.
type Capacity struct {
	limit     int
	unlimited bool
}

func Unlimited() Capacity { return Capacity{unlimited: true} }

func Limited(n int) (Capacity, error) {
	if n < 0 {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{limit: n}, nil
}

// CapacityFromLimit maps a nullable stored limit; nil means unlimited.
func CapacityFromLimit(limit *int32) (Capacity, error) {
	if limit == nil {
		return Unlimited(), nil
	}
	return Limited(int(*limit))
}

func (c Capacity) IsUnlimited() bool { return c.unlimited }

// Limit is meaningless when unlimited.
func (c Capacity) Limit() int { return c.limit }

func (c Capacity) LimitPtr() *int32 {
	if c.unlimited {
		return nil
	}
	l := int32(c.limit) // #nosec G115 -- limit is a small participant count
	return &l
}

// IsFull reports whether count participants already exhaust the capacity.
func (c Capacity) IsFull(count int) bool {
	return !c.unlimited && count >= c.limit
}

func (c Capacity) String() string {
	if c.unlimited {
		return "unlimited"
	}
	return strconv.Itoa(c.limit)
}
