package prospecting

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrichPopulatesAllFields(t *testing.T) {
	e := NewEnricher(rand.New(rand.NewSource(7)))
	contact := &Contact{Name: "Jane Smith", Role: "Digital Transformation Lead"}

	enr := e.Enrich(contact)

	assert.GreaterOrEqual(t, len(enr.Interests), 1)
	assert.LessOrEqual(t, len(enr.Interests), 3)
	assert.Contains(t, enr.RecentNews, "Company ")
	assert.Contains(t, enr.LastActivity, "Posted on LinkedIn")

	seen := map[string]bool{}
	for _, i := range enr.Interests {
		assert.False(t, seen[i], "duplicate interest %q", i)
		seen[i] = true
	}
}

func TestEnrichDeterministicUnderSeed(t *testing.T) {
	contact := &Contact{Name: "John Doe"}

	a := NewEnricher(rand.New(rand.NewSource(99))).Enrich(contact)
	b := NewEnricher(rand.New(rand.NewSource(99))).Enrich(contact)

	assert.Equal(t, a, b)
}
