package prospecting

import (
	"strings"
	"time"
)

// Company represents a target company surfaced by discovery.
type Company struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Size     string `json:"size"`
}

// Contact represents a person at a target company. Contacts are created by
// discovery and never mutated afterwards; enrichment data lives in the
// separate Enrichment struct.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Email       string    `json:"email"`
	LinkedInURL string    `json:"linkedin_url,omitempty"`
	Company     Company   `json:"company"`
	CreatedAt   time.Time `json:"created_at"`
}

// Enrichment holds optional per-contact personalization data.
type Enrichment struct {
	Interests    []string `json:"interests,omitempty"`
	RecentNews   string   `json:"recent_news,omitempty"`
	LastActivity string   `json:"last_activity,omitempty"`
}

// SearchRequest describes a discovery query.
type SearchRequest struct {
	IndustryKeywords string
	Region           string
	TargetRoles      []string
}

// Validate validates the discovery query.
func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.IndustryKeywords) == "" {
		return ErrMissingIndustry
	}
	if strings.TrimSpace(r.Region) == "" {
		return ErrMissingRegion
	}
	return nil
}

// MatchesRole reports whether the contact's role matches any target role.
// Matching is a case-insensitive substring test; an empty target list
// matches everything.
func (c *Contact) MatchesRole(targetRoles []string) bool {
	if len(targetRoles) == 0 {
		return true
	}
	role := strings.ToLower(c.Role)
	for _, target := range targetRoles {
		if strings.Contains(role, strings.ToLower(target)) {
			return true
		}
	}
	return false
}
