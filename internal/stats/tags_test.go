package stats

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(duration int, tags ...string) domain.FocusSession {
	return domain.FocusSession{ID: fmt.Sprintf("s-%d-%v", duration, tags), Duration: duration, Tags: tags}
}

func TestCalculateTagStats_Empty(t *testing.T) {
	got := CalculateTagStats(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = CalculateTagStats([]domain.FocusSession{})
	assert.Empty(t, got)
}

func TestCalculateTagStats_UntaggedSessionsContributeNothing(t *testing.T) {
	got := CalculateTagStats([]domain.FocusSession{session(30), session(45)})
	assert.Empty(t, got)

	got = CalculateTagStats([]domain.FocusSession{session(30), session(10, "work")})
	require.Len(t, got, 1)
	assert.Equal(t, 10, got[0].TotalMinutes)
	assert.InDelta(t, 100.0, got[0].Percentage, 1e-9)
}

func TestCalculateTagStats_MultiTagScenario(t *testing.T) {
	sessions := []domain.FocusSession{
		session(30, "work"),
		session(20, "work", "study"),
	}

	got := CalculateTagStats(sessions)
	require.Len(t, got, 2)

	byTag := make(map[string]domain.TagStats)
	for _, ts := range got {
		byTag[ts.Tag] = ts
	}
	assert.Equal(t, 50, byTag["work"].TotalMinutes)
	assert.InDelta(t, 71.43, byTag["work"].Percentage, 0.01)
	assert.Equal(t, 20, byTag["study"].TotalMinutes)
	assert.InDelta(t, 28.57, byTag["study"].Percentage, 0.01)
}

func TestCalculateTagStats_FirstSeenOrder(t *testing.T) {
	got := CalculateTagStats([]domain.FocusSession{
		session(5, "c"),
		session(5, "a", "c"),
		session(5, "b"),
	})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].Tag, got[1].Tag, got[2].Tag})
}

func TestCalculateTagStats_ZeroTotal(t *testing.T) {
	got := CalculateTagStats([]domain.FocusSession{session(0, "work"), session(0, "study")})
	require.Len(t, got, 2)
	for _, ts := range got {
		assert.Equal(t, 0, ts.TotalMinutes)
		assert.Equal(t, 0.0, ts.Percentage, "zero total must not divide by zero")
	}
}

func TestCalculateTagStats_DuplicateTagsCountTwice(t *testing.T) {
	got := CalculateTagStats([]domain.FocusSession{
		session(10, "work", "work"),
		session(10, "study"),
	})
	require.Len(t, got, 2)
	assert.Equal(t, 20, got[0].TotalMinutes)
	assert.InDelta(t, 66.67, got[0].Percentage, 0.01)
}

func TestCalculateTagStats_DoesNotMutateInput(t *testing.T) {
	sessions := []domain.FocusSession{session(30, "work", "study")}
	_ = CalculateTagStats(sessions)
	assert.Equal(t, []string{"work", "study"}, sessions[0].Tags)
	assert.Equal(t, 30, sessions[0].Duration)
}

func TestCalculateTagStats_Idempotent(t *testing.T) {
	sessions := []domain.FocusSession{
		session(30, "work"),
		session(20, "work", "study"),
		session(15, "read"),
	}
	assert.Equal(t, CalculateTagStats(sessions), CalculateTagStats(sessions))
}

// TestCalculateTagStats_Invariants property-tests percentage and total
// invariants over random inputs.
func TestCalculateTagStats_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := []string{"work", "study", "read", "write", "code", "exercise"}

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12)
		sessions := make([]domain.FocusSession, n)
		for i := range sessions {
			var tags []string
			for _, tag := range pool {
				if rng.Intn(3) == 0 {
					tags = append(tags, tag)
				}
			}
			sessions[i] = session(rng.Intn(120)+1, tags...)
		}

		got := CalculateTagStats(sessions)

		if len(got) > 0 {
			var pctSum float64
			for _, ts := range got {
				pctSum += ts.Percentage
			}
			assert.InDelta(t, 100.0, pctSum, 1e-6, "trial %d: percentages must sum to 100", trial)
		}

		for _, ts := range got {
			want := 0
			for _, s := range sessions {
				if s.HasTag(ts.Tag) {
					want += s.Duration
				}
			}
			assert.Equal(t, want, ts.TotalMinutes, "trial %d: total for %q", trial, ts.Tag)
		}
	}
}
