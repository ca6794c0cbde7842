package prospecting

import (
	"fmt"
	"math/rand"
)

var interestPool = []string{
	"AI and automation",
	"Digital transformation",
	"Industry 4.0",
	"Sustainable manufacturing",
	"Supply chain optimization",
	"Cloud infrastructure",
	"Data analytics",
	"IoT implementation",
}

var companyNewsPool = []string{
	"recently expanded operations",
	"announced a sustainability initiative",
	"is implementing new ERP system",
	"acquired a smaller competitor",
	"launched a digital transformation project",
	"hired new technology leadership",
	"reported strong quarterly results",
}

// Enricher decorates contacts with simulated personalization data: LinkedIn
// interests, recent company news and last activity.
type Enricher struct {
	rng *rand.Rand
}

// NewEnricher creates an enricher using the provided random source so runs
// are reproducible under a fixed campaign seed.
func NewEnricher(rng *rand.Rand) *Enricher {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Enricher{rng: rng}
}

// Enrich builds enrichment data for a single contact.
func (e *Enricher) Enrich(contact *Contact) Enrichment {
	count := 1 + e.rng.Intn(3)
	interests := make([]string, 0, count)
	for _, idx := range e.rng.Perm(len(interestPool))[:count] {
		interests = append(interests, interestPool[idx])
	}

	return Enrichment{
		Interests:    interests,
		RecentNews:   "Company " + companyNewsPool[e.rng.Intn(len(companyNewsPool))],
		LastActivity: fmt.Sprintf("Posted on LinkedIn %d days ago", 1+e.rng.Intn(30)),
	}
}
