package prospecting

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

// Directory finds companies and contacts matching a search request.
// Implementations stand in for prospecting APIs like LinkedIn or Apollo.
type Directory interface {
	Search(ctx context.Context, req SearchRequest) ([]*Contact, error)
}

// SimulatedDirectory serves a fixed dataset of Australian manufacturing and
// construction companies. It always succeeds.
type SimulatedDirectory struct {
	logger *logging.Logger
}

// NewSimulatedDirectory creates a directory backed by the built-in dataset.
func NewSimulatedDirectory(logger *logging.Logger) *SimulatedDirectory {
	if logger == nil {
		logger = logging.Default()
	}
	return &SimulatedDirectory{logger: logger.Component("discovery")}
}

type seedContact struct {
	name        string
	role        string
	email       string
	linkedinURL string
}

type seedCompany struct {
	company  Company
	contacts []seedContact
}

var manufacturingCompanies = []seedCompany{
	{
		company: Company{Name: "Aussie Manufacturing Co", Industry: "Manufacturing", Website: "www.aussiemfg.com.au", Size: "50-200 employees"},
		contacts: []seedContact{
			{name: "John Doe", role: "CFO", email: "john.doe@example.com", linkedinURL: "linkedin.com/in/johndoe"},
			{name: "Sarah Wilson", role: "Head of Digital Transformation", email: "sarah.wilson@example.com", linkedinURL: "linkedin.com/in/sarahwilson"},
		},
	},
	{
		company: Company{Name: "Melbourne Industrial Solutions", Industry: "Manufacturing", Website: "www.melbourneindustrial.com.au", Size: "200-500 employees"},
		contacts: []seedContact{
			{name: "Michael Chen", role: "CFO", email: "m.chen@example.com", linkedinURL: "linkedin.com/in/michaelchen"},
			{name: "Jessica Taylor", role: "Digital Transformation Lead", email: "j.taylor@example.com", linkedinURL: "linkedin.com/in/jtaylor"},
		},
	},
}

var constructionCompanies = []seedCompany{
	{
		company: Company{Name: "BuildRight Constructions", Industry: "Construction", Website: "www.buildright.com.au", Size: "100-250 employees"},
		contacts: []seedContact{
			{name: "David Thompson", role: "CFO", email: "d.thompson@example.com", linkedinURL: "linkedin.com/in/davidthompson"},
			{name: "Jane Smith", role: "Digital Transformation Lead", email: "jane.smith@example.com", linkedinURL: "linkedin.com/in/janesmith"},
		},
	},
	{
		company: Company{Name: "Sydney Builders Group", Industry: "Construction", Website: "www.sydneybuilders.com.au", Size: "500-1000 employees"},
		contacts: []seedContact{
			{name: "Robert Johnson", role: "CFO", email: "r.johnson@example.com", linkedinURL: "linkedin.com/in/robertjohnson"},
			{name: "Emma Davis", role: "Head of Digital Transformation", email: "emma.davis@example.com", linkedinURL: "linkedin.com/in/emmadavis"},
		},
	},
}

// Search returns contacts from the fixed dataset whose industry matches the
// keywords and whose role matches one of the target roles.
func (d *SimulatedDirectory) Search(ctx context.Context, req SearchRequest) ([]*Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d.logger.Info("searching for contacts",
		"roles", strings.Join(req.TargetRoles, ", "),
		"industries", req.IndustryKeywords,
		"region", req.Region,
	)

	keywords := strings.ToLower(req.IndustryKeywords)

	var pool []seedCompany
	if strings.Contains(keywords, "manufacturing") {
		pool = append(pool, manufacturingCompanies...)
	}
	if strings.Contains(keywords, "construction") {
		pool = append(pool, constructionCompanies...)
	}

	now := time.Now().UTC()
	var result []*Contact
	for _, sc := range pool {
		for _, c := range sc.contacts {
			contact := &Contact{
				ID:          uuid.NewString(),
				Name:        c.name,
				Role:        c.role,
				Email:       c.email,
				LinkedInURL: c.linkedinURL,
				Company:     sc.company,
				CreatedAt:   now,
			}
			if contact.MatchesRole(req.TargetRoles) {
				result = append(result, contact)
			}
		}
	}

	d.logger.Info("contacts found", "count", len(result))
	return result, nil
}

var _ Directory = (*SimulatedDirectory)(nil)
