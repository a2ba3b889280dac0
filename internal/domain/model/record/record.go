package record

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Record is a rendered greeting as written to the journal and to structured output
type Record struct {
	ID        string    `json:"id" yaml:"id"`
	FirstName string    `json:"first_name" yaml:"first_name"`
	LastName  string    `json:"last_name" yaml:"last_name"`
	Platform  string    `json:"platform" yaml:"platform"`
	Greeting  string    `json:"greeting" yaml:"greeting"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// GenerateID generates a new record ID using ULID
// Format: ULID (e.g., 01JB6X8Y2K9FQR4T3VWHGP5M2C)
func GenerateID(now time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}

// New creates a Record with a fresh ID for a greeting rendered at now
func New(firstName, lastName, platform, greeting string, now time.Time) Record {
	now = now.UTC()
	return Record{
		ID:        GenerateID(now),
		FirstName: firstName,
		LastName:  lastName,
		Platform:  platform,
		Greeting:  greeting,
		CreatedAt: now,
	}
}
