package schedule

import (
	"errors"
	"sort"
	"strings"

	"trainer-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrCapacityExceeded          = errors.New("capacity exceeded")
	ErrParticipantNotFound       = errors.New("participant not found")
	ErrClassTypeRequired         = errors.New("class type is required")
	ErrCapacityBelowParticipants = errors.New("participant limit is below the current participant count")
)

// CapacityError names the session that had no room left.
type CapacityError struct {
	SessionID string
}

func (e *CapacityError) Error() string {
	return "capacity exceeded for session id: " + e.SessionID
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// ParticipantError names the session missing the expected participant entry.
type ParticipantError struct {
	SessionID string
	BookerID  uuid.UUID
}

func (e *ParticipantError) Error() string {
	return "participant " + e.BookerID.String() + " not found in session id: " + e.SessionID
}

func (e *ParticipantError) Is(target error) bool {
	return target == ErrParticipantNotFound
}

type Participant struct {
	BookerID  uuid.UUID
	Accepted  bool
	Paid      bool
	PaymentID string
}

type Session struct {
	key          SessionKey
	classType    string
	capacity     Capacity
	price        money.Price
	participants map[uuid.UUID]Participant
}

// NewSession publishes a configured slot with no participants.
func NewSession(key SessionKey, classType string, capacity Capacity, price money.Price) (*Session, error) {
	classType = strings.TrimSpace(classType)
	if classType == "" {
		return nil, ErrClassTypeRequired
	}
	return &Session{
		key:          key,
		classType:    classType,
		capacity:     capacity,
		price:        price,
		participants: make(map[uuid.UUID]Participant),
	}, nil
}

func ReconstructSession(key SessionKey, classType string, capacity Capacity, price money.Price, participants []Participant) *Session {
	set := make(map[uuid.UUID]Participant, len(participants))
	for _, p := range participants {
		set[p.BookerID] = p
	}
	return &Session{
		key:          key,
		classType:    classType,
		capacity:     capacity,
		price:        price,
		participants: set,
	}
}

func (s *Session) Key() SessionKey       { return s.key }
func (s *Session) ID() string            { return s.key.ID() }
func (s *Session) ClassType() string     { return s.classType }
func (s *Session) Capacity() Capacity    { return s.capacity }
func (s *Session) Price() money.Price    { return s.price }
func (s *Session) ParticipantCount() int { return len(s.participants) }
func (s *Session) IsConfigured() bool    { return s.classType != "" }
func (s *Session) IsFull() bool          { return s.capacity.IsFull(len(s.participants)) }

func (s *Session) HasParticipant(bookerID uuid.UUID) bool {
	_, ok := s.participants[bookerID]
	return ok
}

func (s *Session) Participant(bookerID uuid.UUID) (Participant, bool) {
	p, ok := s.participants[bookerID]
	return p, ok
}

// Participants returns a copy ordered by booker id.
func (s *Session) Participants() []Participant {
	out := make([]Participant, 0, len(s.participants))
	for _, p := range s.participants {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BookerID.String() < out[j].BookerID.String()
	})
	return out
}

// Update edits the slot definition. The new limit must still fit current participants.
func (s *Session) Update(classType string, capacity Capacity, price money.Price) error {
	classType = strings.TrimSpace(classType)
	if classType == "" {
		return ErrClassTypeRequired
	}
	if !capacity.IsUnlimited() && capacity.Limit() < len(s.participants) {
		return ErrCapacityBelowParticipants
	}
	s.classType = classType
	s.capacity = capacity
	s.price = price
	return nil
}

// Reset clears the definition but keeps the time key and participant entries.
func (s *Session) Reset() {
	s.classType = ""
	s.capacity = Capacity{}
	s.price = money.Price{}
}

// CanReserve reports the error Reserve would return without mutating.
func (s *Session) CanReserve(bookerID uuid.UUID) error {
	if s.HasParticipant(bookerID) {
		return nil
	}
	if s.IsFull() {
		return &CapacityError{SessionID: s.ID()}
	}
	return nil
}

// Reserve adds an accepted, unpaid entry. Already-present bookers are left untouched.
func (s *Session) Reserve(bookerID uuid.UUID) error {
	if err := s.CanReserve(bookerID); err != nil {
		return err
	}
	if !s.HasParticipant(bookerID) {
		s.participants[bookerID] = Participant{BookerID: bookerID, Accepted: true}
	}
	return nil
}

func (s *Session) MarkPaid(bookerID uuid.UUID, paymentID string) error {
	p, ok := s.participants[bookerID]
	if !ok {
		return &ParticipantError{SessionID: s.ID(), BookerID: bookerID}
	}
	p.Paid = true
	p.PaymentID = paymentID
	s.participants[bookerID] = p
	return nil
}

// Remove reports whether an entry was actually removed.
func (s *Session) Remove(bookerID uuid.UUID) bool {
	if _, ok := s.participants[bookerID]; !ok {
		return false
	}
	delete(s.participants, bookerID)
	return true
}

// ReserveAll is all-or-nothing: every session is checked before any is mutated.
func ReserveAll(sessions []*Session, bookerID uuid.UUID) error {
	for _, s := range sessions {
		if err := s.CanReserve(bookerID); err != nil {
			return err
		}
	}
	for _, s := range sessions {
		if err := s.Reserve(bookerID); err != nil {
			return err
		}
	}
	return nil
}

// PaidSeats lists the sessions where the booker already holds a paid seat.
func PaidSeats(sessions []*Session, bookerID uuid.UUID) []string {
	var ids []string
	for _, s := range sessions {
		if p, ok := s.participants[bookerID]; ok && p.Paid {
			ids = append(ids, s.ID())
		}
	}
	return ids
}

// MarkAllPaid is all-or-nothing over the batch.
func MarkAllPaid(sessions []*Session, bookerID uuid.UUID, paymentID string) error {
	for _, s := range sessions {
		if !s.HasParticipant(bookerID) {
			return &ParticipantError{SessionID: s.ID(), BookerID: bookerID}
		}
	}
	for _, s := range sessions {
		if err := s.MarkPaid(bookerID, paymentID); err != nil {
			return err
		}
	}
	return nil
}
