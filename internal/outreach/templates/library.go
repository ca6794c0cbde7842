package templates

import "fmt"

// Template names for the three campaign stages.
const (
	NameInitial      = "initial"
	NameFollowup     = "followup"
	NamePersonalized = "personalized"
)

const initialTemplate = `Subject: Modernizing {{.Industry}} Operations at {{.Company}}

Hi {{.ContactName}},

I noticed {{.Company}} {{.RecentNews}}. At {{.FromCompany}}, we specialize in helping {{.Industry}} companies like yours optimize operations through digital transformation.

Would you be open to a 15-minute chat about how we've helped similar {{.Industry}} companies achieve 30%+ operational efficiency gains?

Best,
{{.FromName}}
{{.FromCompany}}
`

const followupTemplate = `Subject: Re: Modernizing {{.Industry}} Operations at {{.Company}}

Hi {{.ContactName}},

I wanted to follow up on my previous email about helping {{.Company}} optimize operations through strategic digital transformation.

Many {{.Industry}} companies we work with were initially hesitant until they saw our case studies. I'd be happy to share how we helped a {{.CompanySize}} {{.Industry}} company achieve significant ROI within 6 months.

Would you have 15 minutes this week for a quick call?

Best,
{{.FromName}}
{{.FromCompany}}
`

const personalizedTemplate = `Subject: Your LinkedIn post on {{index .Interests 0}}

Hi {{.ContactName}},

I noticed your recent LinkedIn activity around {{index .Interests 0}}, and it resonated with the work we're doing at {{.FromCompany}}.

Given your role as {{.Role}} at {{.Company}}, I thought you might be interested in how we're helping {{.Industry}} companies implement {{index .Interests 0}} solutions that deliver measurable ROI.

I have a specific idea for {{.Company}} based on your recent initiatives. Would you be open to a brief discussion?

Best,
{{.FromName}}
{{.FromCompany}}
`

var library = map[string]string{
	NameInitial:      initialTemplate,
	NameFollowup:     followupTemplate,
	NamePersonalized: personalizedTemplate,
}

// Lookup returns the raw template text for a stage name.
func Lookup(name string) (string, error) {
	tmpl, ok := library[name]
	if !ok {
		return "", fmt.Errorf("templates: unknown template %q", name)
	}
	return tmpl, nil
}

// Data carries the fields the campaign templates reference.
type Data struct {
	ContactName string
	Role        string
	Company     string
	CompanySize string
	Industry    string
	RecentNews  string
	Interests   []string
	FromName    string
	FromCompany string
}

// WithDefaults fills optional personalization fields so strict rendering
// never fails on an unenriched contact.
func (d Data) WithDefaults() Data {
	if d.RecentNews == "" {
		d.RecentNews = "is in the " + d.Industry + " sector"
	}
	if len(d.Interests) == 0 {
		d.Interests = []string{"digital transformation"}
	}
	return d
}
