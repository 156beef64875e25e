package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify_OngoingScenario(t *testing.T) {
	now := time.Now()

	got := Classify(now, now.Add(-time.Hour), now.Add(time.Hour))

	assert.Equal(t, EventOngoing, got)
}

func TestClassify_Bounds(t *testing.T) {
	now := time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end time.Time
		want       EventState
	}{
		{"starts now", now, now.Add(time.Hour), EventOngoing},
		{"ends now", now.Add(-time.Hour), now, EventOngoing},
		{"starts in a minute", now.Add(time.Minute), now.Add(time.Hour), EventUpcoming},
		{"ended a second ago", now.Add(-time.Hour), now.Add(-time.Second), EventPast},
		{"far future", now.Add(30 * 24 * time.Hour), now.Add(31 * 24 * time.Hour), EventUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(now, tt.start, tt.end))
		})
	}
}

func TestClassify_ExclusiveAndExhaustive(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for startOff := -5; startOff <= 5; startOff++ {
		for length := 1; length <= 4; length++ {
			start := base.Add(time.Duration(startOff) * time.Hour)
			end := start.Add(time.Duration(length) * time.Hour)

			past := end.Before(base)
			ongoing := !start.After(base) && !base.After(end)
			upcoming := base.Before(start)

			n := 0
			for _, b := range []bool{past, ongoing, upcoming} {
				if b {
					n++
				}
			}
			assert.Equal(t, 1, n, "start=%v end=%v", start, end)

			got := Classify(base, start, end)
			switch {
			case past:
				assert.Equal(t, EventPast, got)
			case ongoing:
				assert.Equal(t, EventOngoing, got)
			default:
				assert.Equal(t, EventUpcoming, got)
			}
		}
	}
}

func TestUpdateEventInput_Empty(t *testing.T) {
	assert.True(t, UpdateEventInput{}.Empty())

	title := "New"
	assert.False(t, UpdateEventInput{Title: &title}.Empty())
}
