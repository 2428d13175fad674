package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"trainer-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	cursorPrefix     = "v1:"
)

// Cursor is the opaque "after" token of keyset pagination.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// Keyset is the last (time, id) pair of the previous page. Lists are ordered newest first.
type Keyset struct {
	At time.Time
	ID uuid.UUID
}

// EncodeAfterCursor keeps microseconds, the precision postgres stores.
func EncodeAfterCursor(at time.Time, id uuid.UUID) string {
	raw := cursorPrefix + strconv.FormatInt(at.UnixMicro(), 10) + "-" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (Keyset, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return Keyset{}, errs.Wrap(err, "cursor encoding")
	}
	payload, ok := strings.CutPrefix(string(decoded), cursorPrefix)
	if !ok {
		return Keyset{}, errs.New("unsupported cursor version")
	}
	micros, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return Keyset{}, errs.Newf("malformed cursor %q", payload)
	}
	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return Keyset{}, errs.Wrap(err, "cursor timestamp")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Keyset{}, errs.Wrap(err, "cursor id")
	}
	return Keyset{At: time.UnixMicro(ts).UTC(), ID: id}, nil
}

// Keyset returns nil for the first page.
func (c *Cursor) Keyset() (*Keyset, error) {
	if c == nil || c.After == "" {
		return nil, nil
	}
	ks, err := DecodeAfterCursor(c.After)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	return &ks, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
