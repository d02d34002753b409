package quotes

import (
	"errors"
	"testing"
	"time"
)

func TestDecodeEmbeddedTimestamp(t *testing.T) {
	t.Run("wrapped epoch millis", func(t *testing.T) {
		got, err := DecodeEmbeddedTimestamp("/Date(1700000000000+0000)/")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("no run is absent", func(t *testing.T) {
		for _, s := range []string{"", "/Date()/", "2023-11-14T00:00:00", "/Date(170000000000)/"} {
			_, err := DecodeEmbeddedTimestamp(s)
			if !errors.Is(err, ErrTimestampAbsent) {
				t.Fatalf("%q: expected ErrTimestampAbsent, got %v", s, err)
			}
		}
	})

	t.Run("first run wins", func(t *testing.T) {
		s := "/Date(1600000000000)/ revised /Date(1700000000000)/"
		if n := TimestampRuns(s); n != 2 {
			t.Fatalf("expected 2 runs, got %d", n)
		}
		got, err := DecodeEmbeddedTimestamp(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UnixMilli() != 1600000000000 {
			t.Fatalf("expected first run, got %d", got.UnixMilli())
		}
	})
}
