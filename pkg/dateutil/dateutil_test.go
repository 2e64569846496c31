package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStampIsUTC(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	stamped := Stamp(time.Date(2025, 10, 1, 22, 30, 0, 0, loc))
	assert.Equal(t, "2025-10-02T03:30:00Z", stamped)
}

func TestParseStamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", "2025-10-01T00:00:00Z", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)},
		{"plain date", "2025-10-01", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)},
		{"garbage", "last tuesday", time.Time{}},
		{"empty", "", time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, ParseStamp(tt.in).Equal(tt.want))
		})
	}
}

func TestStampRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	assert.True(t, ParseStamp(Stamp(now)).Equal(now))
}
