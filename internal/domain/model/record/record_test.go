package record

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	rec := New("Foo", "Bar", "GUMBLE", "Hello World by Foo Bar from the amazing world of GUMBLE!!", now)

	assert.Equal(t, "Foo", rec.FirstName)
	assert.Equal(t, "Bar", rec.LastName)
	assert.Equal(t, "GUMBLE", rec.Platform)
	assert.Equal(t, "Hello World by Foo Bar from the amazing world of GUMBLE!!", rec.Greeting)
	assert.Equal(t, now, rec.CreatedAt)

	id, err := ulid.ParseStrict(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), id.Time())
}

func TestGenerateID_Monotonic(t *testing.T) {
	now := time.Now()
	prev := GenerateID(now)
	for i := 0; i < 100; i++ {
		next := GenerateID(now)
		assert.Less(t, prev, next, "IDs generated in the same millisecond must increase")
		prev = next
	}
}
