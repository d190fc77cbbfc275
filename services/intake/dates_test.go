package intake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateFormats(t *testing.T) {
	want := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC).UnixMilli()

	for _, in := range []string{
		"1990-05-17",
		"05/17/1990",
		"17/05/1990",
		"1990-05-17T00:00:00Z",
		"1990-05-17T00:00:00.000Z",
		"1990-05-17T00:00:00",
	} {
		got, ok := normalizeDate(in)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestNormalizeDateRoundTrip(t *testing.T) {
	ts := time.Date(1987, 11, 3, 0, 0, 0, 0, time.UTC)
	for _, layout := range []string{"2006-01-02", "01/02/2006", time.RFC3339} {
		ms, ok := normalizeDate(ts.Format(layout))
		require.True(t, ok, "layout %q", layout)
		assert.Equal(t, ts.UnixMilli(), ms, "layout %q", layout)
	}
}

func TestNormalizeDateAmbiguousSlashPrefersUS(t *testing.T) {
	ms, ok := normalizeDate("12/05/1990")
	require.True(t, ok)
	assert.Equal(t, time.Date(1990, 12, 5, 0, 0, 0, 0, time.UTC).UnixMilli(), ms)
}

func TestNormalizeDateUnparseable(t *testing.T) {
	for _, in := range []string{"", "  ", "yesterday", "19900517", "05-17-1990"} {
		_, ok := normalizeDate(in)
		assert.False(t, ok, "input %q", in)
	}
}
