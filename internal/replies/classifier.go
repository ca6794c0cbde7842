package replies

import "strings"

// Keyword lists checked in order; the first list containing a match decides
// the label. Unsubscribe wording therefore always beats interest wording.
var bouncedKeywords = []string{
	"mail delivery failed",
	"undeliverable",
	"mailbox full",
	"address not found",
	"domain not found",
	"delivery status notification",
}

var unsubscribedKeywords = []string{
	"unsubscribe",
	"remove me",
	"don't contact",
	"do not contact",
	"opt out",
	"take me off",
}

var outOfOfficeKeywords = []string{
	"out of the office",
	"out of office",
	"annual leave",
	"on leave until",
	"limited access to email",
	"currently away",
}

var notInterestedKeywords = []string{
	"not interested",
	"no thanks",
	"not relevant",
	"not looking",
	"no need",
	"another provider",
}

var interestedKeywords = []string{
	"interested",
	"sounds good",
	"sounds great",
	"let's talk",
	"schedule",
	"set up a time",
	"learn more",
	"tell me more",
	"happy to",
	"case studies",
	"caught my attention",
}

// Classify assigns a label to reply text. First match wins; no scoring.
func Classify(text string) Label {
	lower := strings.ToLower(text)

	for _, kw := range bouncedKeywords {
		if strings.Contains(lower, kw) {
			return LabelBounced
		}
	}
	for _, kw := range unsubscribedKeywords {
		if strings.Contains(lower, kw) {
			return LabelUnsubscribed
		}
	}
	for _, kw := range outOfOfficeKeywords {
		if strings.Contains(lower, kw) {
			return LabelOutOfOffice
		}
	}
	// Polite declines mention interest words ("not interested"), so they are
	// ruled out before the interest list is consulted.
	for _, kw := range notInterestedKeywords {
		if strings.Contains(lower, kw) {
			return LabelOther
		}
	}
	for _, kw := range interestedKeywords {
		if strings.Contains(lower, kw) {
			return LabelInterested
		}
	}
	return LabelOther
}
