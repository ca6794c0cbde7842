// Package metrics exposes Prometheus counters for the outreach pipeline.
// A nil *OutreachMetrics is valid and records nothing, so callers never need
// to guard instrumentation sites.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OutreachMetrics holds the campaign counters.
type OutreachMetrics struct {
	contactsDiscovered prometheus.Counter
	messagesSent       *prometheus.CounterVec
	repliesClassified  *prometheus.CounterVec
	notificationsSent  prometheus.Counter
	meetingsBooked     prometheus.Counter
}

// New creates the metric set and registers it with the given registerer.
func New(reg prometheus.Registerer) *OutreachMetrics {
	m := &OutreachMetrics{
		contactsDiscovered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "outreach",
			Name:      "contacts_discovered_total",
			Help:      "Contacts surfaced by discovery.",
		}),
		messagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outreach",
			Name:      "messages_sent_total",
			Help:      "Outbound campaign emails by stage.",
		}, []string{"stage"}),
		repliesClassified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outreach",
			Name:      "replies_classified_total",
			Help:      "Inbox replies by classification label.",
		}, []string{"label"}),
		notificationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "outreach",
			Name:      "notifications_sent_total",
			Help:      "Interested-prospect alerts posted to chat.",
		}),
		meetingsBooked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "outreach",
			Name:      "meetings_booked_total",
			Help:      "Meetings booked with interested prospects.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.contactsDiscovered,
			m.messagesSent,
			m.repliesClassified,
			m.notificationsSent,
			m.meetingsBooked,
		)
	}
	return m
}

// ContactDiscovered increments the discovery counter.
func (m *OutreachMetrics) ContactDiscovered() {
	if m == nil {
		return
	}
	m.contactsDiscovered.Inc()
}

// MessageSent increments the sent counter for a stage.
func (m *OutreachMetrics) MessageSent(stage string) {
	if m == nil {
		return
	}
	m.messagesSent.WithLabelValues(stage).Inc()
}

// ReplyClassified increments the reply counter for a label.
func (m *OutreachMetrics) ReplyClassified(label string) {
	if m == nil {
		return
	}
	m.repliesClassified.WithLabelValues(label).Inc()
}

// NotificationSent increments the notification counter.
func (m *OutreachMetrics) NotificationSent() {
	if m == nil {
		return
	}
	m.notificationsSent.Inc()
}

// MeetingBooked increments the booking counter.
func (m *OutreachMetrics) MeetingBooked() {
	if m == nil {
		return
	}
	m.meetingsBooked.Inc()
}
