package folio

// EventSink is the interface for optional external event consumers, such as
// the ECS adapter in folio/ecs. When set on a Page, page-level events are
// forwarded to it as they happen.
type EventSink interface {
	EmitEvent(event PageEvent)
}

// EventType identifies a kind of page event.
type EventType uint8

const (
	EventLoaderHidden    EventType = iota // the page loader finished fading out
	EventSectionRevealed                  // a section scrolled into view for the first time
	EventNavigate                         // an anchor or nav link started a smooth scroll
	EventMenuToggled                      // the mobile menu opened or closed
	EventFormSubmitted                    // the contact form passed validation
	EventFormRejected                     // the contact form failed validation
	EventNotification                     // a toast was shown
	EventResumeSaved                      // the resume asset was copied to disk
)

var eventTypeNames = [...]string{
	EventLoaderHidden:    "loader-hidden",
	EventSectionRevealed: "section-revealed",
	EventNavigate:        "navigate",
	EventMenuToggled:     "menu-toggled",
	EventFormSubmitted:   "form-submitted",
	EventFormRejected:    "form-rejected",
	EventNotification:    "notification",
	EventResumeSaved:     "resume-saved",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// PageEvent carries page event data for an EventSink.
type PageEvent struct {
	Type EventType
	// Target is the section id, anchor, field or file involved, if any.
	Target string
	// Message is the notification text for EventNotification.
	Message string
	// Value is a numeric payload: the scroll destination for EventNavigate,
	// 1/0 for EventMenuToggled.
	Value float64
}

// SetEventSink sets the optional event consumer.
func (p *Page) SetEventSink(sink EventSink) {
	p.sink = sink
}

func (p *Page) emit(ev PageEvent) {
	if p.sink != nil {
		p.sink.EmitEvent(ev)
	}
}
