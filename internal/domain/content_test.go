package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventIsPast(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		ev   Event
		want bool
	}{
		{"yesterday", Event{Date: "2026-08-27"}, true},
		{"today is not past", Event{Date: "2026-08-28"}, false},
		{"tomorrow", Event{Date: "2026-08-29"}, false},
		{"end date wins over date", Event{Date: "2026-08-20", EndDate: "2026-08-30"}, false},
		{"multi-day event over", Event{Date: "2026-08-20", EndDate: "2026-08-25"}, true},
		{"no dates", Event{}, false},
		{"unparseable date", Event{Date: "28/08/2026"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.ev.IsPast(now))
		})
	}
}
