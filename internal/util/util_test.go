package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	// sha256("")
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.NotEqual(t, Checksum([]byte(`{"a":1}`)), Checksum([]byte(`{"a":2}`)))
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "zero", n: 0, want: "0 B"},
		{name: "under a kilobyte", n: 512, want: "512 B"},
		{name: "one kilobyte", n: 1024, want: "1.0 KB"},
		{name: "fractional kilobyte", n: 1536, want: "1.5 KB"},
		{name: "megabyte", n: 1024 * 1024, want: "1.0 MB"},
		{name: "gigabytes", n: 5 * 1024 * 1024 * 1024, want: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatBytes(tt.n))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "seconds", d: 45 * time.Second, want: "45s"},
		{name: "rounds up to a minute", d: 59*time.Second + 500*time.Millisecond, want: "1m0s"},
		{name: "minutes", d: 2*time.Minute + 30*time.Second, want: "2m30s"},
		{name: "hours", d: time.Hour + 30*time.Minute, want: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}
