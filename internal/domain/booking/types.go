package booking

import "time"

// Phase is the stored lifecycle position. It is finer grained than Status.
type Phase string

const (
	PhasePending   Phase = "pending"
	PhaseAccepted  Phase = "accepted"
	PhasePaid      Phase = "paid"
	PhaseStarted   Phase = "started"
	PhaseRejected  Phase = "rejected"
	PhaseCancelled Phase = "cancelled"
	PhaseExpired   Phase = "expired"
	PhaseEnded     Phase = "ended"
	PhaseDropped   Phase = "dropped"
)

func (p Phase) String() string { return string(p) }

func (p Phase) IsValid() bool {
	switch p {
	case PhasePending, PhaseAccepted, PhasePaid, PhaseStarted,
		PhaseRejected, PhaseCancelled, PhaseExpired, PhaseEnded, PhaseDropped:
		return true
	default:
		return false
	}
}

func (p Phase) IsTerminal() bool {
	switch p {
	case PhaseRejected, PhaseCancelled, PhaseExpired, PhaseEnded, PhaseDropped:
		return true
	default:
		return false
	}
}

// Status is the externally visible booking status.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusAccepted  Status = "Accepted"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
	StatusExpired   Status = "Expired"
	StatusEnded     Status = "Ended"
	StatusDropped   Status = "Dropped"
)

func (s Status) String() string { return string(s) }

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled,
		StatusExpired, StatusEnded, StatusDropped:
		return Status(s), true
	default:
		return "", false
	}
}

func (p Phase) Status() Status {
	switch p {
	case PhasePending:
		return StatusPending
	case PhaseAccepted, PhasePaid, PhaseStarted:
		return StatusAccepted
	case PhaseRejected:
		return StatusRejected
	case PhaseCancelled:
		return StatusCancelled
	case PhaseExpired:
		return StatusExpired
	case PhaseEnded:
		return StatusEnded
	case PhaseDropped:
		return StatusDropped
	default:
		return ""
	}
}

// Phases lists the stored phases that surface as s.
func (s Status) Phases() []Phase {
	switch s {
	case StatusPending:
		return []Phase{PhasePending}
	case StatusAccepted:
		return []Phase{PhaseAccepted, PhasePaid, PhaseStarted}
	case StatusRejected:
		return []Phase{PhaseRejected}
	case StatusCancelled:
		return []Phase{PhaseCancelled}
	case StatusExpired:
		return []Phase{PhaseExpired}
	case StatusEnded:
		return []Phase{PhaseEnded}
	case StatusDropped:
		return []Phase{PhaseDropped}
	default:
		return nil
	}
}

// State is the lifecycle position together with the fields valid in it.
type State interface {
	Phase() Phase
	isState()
}

type Pending struct{}

type Accepted struct {
	AcceptedAt time.Time
}

type Paid struct {
	AcceptedAt time.Time
	PaidAt     time.Time
	PaymentID  string
}

type Started struct {
	Paid
	StartAt time.Time
	EndDate time.Time
}

type Rejected struct {
	Reason     string
	RejectedAt time.Time
}

// Cancelled keeps AcceptedAt when the booker backed out after acceptance.
type Cancelled struct {
	Reason     string
	CancelAt   time.Time
	AcceptedAt *time.Time
}

type Expired struct {
	ExpiredAt time.Time
}

type Ended struct {
	Started
	EndedAt time.Time
}

type Dropped struct {
	Started
	Reason    string
	DroppedAt time.Time
}

func (Pending) Phase() Phase   { return PhasePending }
func (Accepted) Phase() Phase  { return PhaseAccepted }
func (Paid) Phase() Phase      { return PhasePaid }
func (Started) Phase() Phase   { return PhaseStarted }
func (Rejected) Phase() Phase  { return PhaseRejected }
func (Cancelled) Phase() Phase { return PhaseCancelled }
func (Expired) Phase() Phase   { return PhaseExpired }
func (Ended) Phase() Phase     { return PhaseEnded }
func (Dropped) Phase() Phase   { return PhaseDropped }

func (Pending) isState()   {}
func (Accepted) isState()  {}
func (Paid) isState()      {}
func (Started) isState()   {}
func (Rejected) isState()  {}
func (Cancelled) isState() {}
func (Expired) isState()   {}
func (Ended) isState()     {}
func (Dropped) isState()   {}
