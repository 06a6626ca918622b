package chat

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecorate_Frequency(t *testing.T) {
	c := &Client{rng: rand.New(rand.NewSource(42))}

	const trials = 10000
	decorated := 0
	for i := 0; i < trials; i++ {
		out := c.decorate("hello")
		if out != "hello" {
			decorated++
			// At most one emoji, separated by a single space
			suffix := strings.TrimPrefix(out, "hello ")
			found := false
			for _, e := range emojis {
				if suffix == e {
					found = true
					break
				}
			}
			assert.True(t, found, "unexpected suffix %q", suffix)
		}
	}

	rate := float64(decorated) / float64(trials)
	assert.Greater(t, rate, 0.18, "decoration rate too low: %f", rate)
	assert.Less(t, rate, 0.22, "decoration rate too high: %f", rate)
}

func TestAnswerMeansYes(t *testing.T) {
	testCases := []struct {
		answer   string
		expected bool
	}{
		{"Yes", true},
		{"yes.", true},
		{"Yes, it is a movie description.", true},
		{"نعم", true},
		{"No", false},
		{"no, just small talk", false},
		{"", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, answerMeansYes(tc.answer), "answer: %q", tc.answer)
	}
}
