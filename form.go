package folio

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	formSendDelay   = 1.5
	formSentDisplay = 3.0
	fieldLabelSize  = 14.0
	fieldBoxHeight  = 42.0
	fieldGap        = 22.0
	messageHeight   = 120.0
	submitWidth     = 190.0
	submitHeight    = 48.0

	submitIdleLabel    = "Send Message"
	submitSendingLabel = "Sending..."
	submitSentLabel    = "Message Sent!"

	notifyFormSent    = "Message sent successfully!"
	notifyFormInvalid = "Please fix the errors in the form"
)

// spaceClass matches what browsers treat as \s: ASCII whitespace, \v and the
// Unicode space separators. RE2's \s alone is ASCII-only.
const spaceClass = `\s\v\p{Zs}\x{2028}\x{2029}\x{feff}`

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z` + spaceClass + `]+$`)
	emailRe = regexp.MustCompile(`^[^` + spaceClass + `@]+@[^` + spaceClass + `@]+\.[^` + spaceClass + `@]+$`)
)

// ValidateName returns the error message for a name value, or "".
func ValidateName(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return "Name is required"
	case utf8.RuneCountInString(v) < 2:
		return "Name must be at least 2 characters"
	case !nameRe.MatchString(v):
		return "Name can only contain letters and spaces"
	}
	return ""
}

// ValidateEmail returns the error message for an email value, or "".
func ValidateEmail(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return "Email is required"
	case !emailRe.MatchString(v):
		return "Please enter a valid email address"
	}
	return ""
}

// ValidateSubject returns the error message for a subject value, or "".
func ValidateSubject(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return "Subject is required"
	case utf8.RuneCountInString(v) < 3:
		return "Subject must be at least 3 characters"
	}
	return ""
}

// ValidateMessage returns the error message for a message value, or "".
func ValidateMessage(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return "Message is required"
	case utf8.RuneCountInString(v) < 10:
		return "Message must be at least 10 characters"
	}
	return ""
}

// FormField is one input of the contact form.
type FormField struct {
	Name  string
	Label string
	Value string
	// Error is the message shown under the field; empty when valid.
	Error    string
	validate func(string) string
	rect     Rect // document space
}

// Validate runs the field's rule, stores the message and reports validity.
func (f *FormField) Validate() bool {
	f.Error = f.validate(f.Value)
	return f.Error == ""
}

// FormMessage is a submitted contact form.
type FormMessage struct {
	Name, Email, Subject, Message string
}

type submitState uint8

const (
	submitIdle submitState = iota
	submitSending
	submitSent
)

// ContactForm is the name/email/subject/message form. A field is validated
// when it loses focus, and again on every edit while it shows an error.
// Submitting validates every field; a valid form shows "Sending..." for
// 1.5s, resets, shows "Message Sent!" for 3s and then restores the button.
type ContactForm struct {
	// OnSubmit, if set, receives the form values when a valid form is sent.
	OnSubmit func(FormMessage)

	p       *Page
	section *Section
	fields  [4]*FormField
	focus   int
	state   submitState
	timer   float64
	submit  Rect // document space
}

func newContactForm(p *Page) *ContactForm {
	var sec *Section
	for i := range p.content.Sections {
		if p.content.Sections[i].Form {
			sec = &p.content.Sections[i]
			break
		}
	}
	if sec == nil {
		return nil
	}
	f := &ContactForm{
		p:       p,
		section: sec,
		focus:   -1,
		fields: [4]*FormField{
			{Name: "name", Label: "Name", validate: ValidateName},
			{Name: "email", Label: "Email", validate: ValidateEmail},
			{Name: "subject", Label: "Subject", validate: ValidateSubject},
			{Name: "message", Label: "Message", validate: ValidateMessage},
		},
	}
	p.OnClick(f.onClick)
	return f
}

// Field returns the field with the given name, or nil.
func (f *ContactForm) Field(name string) *FormField {
	for _, fd := range f.fields {
		if fd.Name == name {
			return fd
		}
	}
	return nil
}

// Focused reports whether a field has keyboard focus.
func (f *ContactForm) Focused() bool {
	return f.focus >= 0
}

// FocusedField returns the focused field, or nil.
func (f *ContactForm) FocusedField() *FormField {
	if f.focus < 0 {
		return nil
	}
	return f.fields[f.focus]
}

// Focus moves keyboard focus to the named field. The previously focused
// field is validated as it blurs.
func (f *ContactForm) Focus(name string) {
	for i, fd := range f.fields {
		if fd.Name == name {
			f.setFocus(i)
			return
		}
	}
}

// Blur removes focus, validating the field that had it.
func (f *ContactForm) Blur() {
	f.setFocus(-1)
}

func (f *ContactForm) setFocus(i int) {
	if i == f.focus {
		return
	}
	if f.focus >= 0 {
		f.fields[f.focus].Validate()
	}
	f.focus = i
}

// InsertRunes types into the focused field. Control characters are dropped.
func (f *ContactForm) InsertRunes(rs []rune) {
	fd := f.FocusedField()
	if fd == nil {
		return
	}
	var b strings.Builder
	b.WriteString(fd.Value)
	for _, r := range rs {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	f.edit(fd, b.String())
}

func (f *ContactForm) edit(fd *FormField, v string) {
	if v == fd.Value {
		return
	}
	fd.Value = v
	if fd.Error != "" {
		fd.Validate()
	}
}

// HandleKey applies an editing key to the focused field and reports whether
// the key was consumed.
func (f *ContactForm) HandleKey(k ebiten.Key) bool {
	fd := f.FocusedField()
	if fd == nil {
		return false
	}
	switch k {
	case ebiten.KeyTab:
		f.setFocus((f.focus + 1) % len(f.fields))
	case ebiten.KeyBackspace:
		if _, size := utf8.DecodeLastRuneInString(fd.Value); size > 0 {
			f.edit(fd, fd.Value[:len(fd.Value)-size])
		}
	case ebiten.KeyEnter:
		if f.focus == len(f.fields)-1 {
			f.Submit()
		} else {
			f.setFocus(f.focus + 1)
		}
	case ebiten.KeyEscape:
		f.Blur()
		return false
	default:
		return false
	}
	return true
}

// Submit validates every field and starts sending when all pass. It returns
// false when the form is invalid or a previous submission is still in
// progress.
func (f *ContactForm) Submit() bool {
	if f.state != submitIdle {
		return false
	}
	valid := true
	for _, fd := range f.fields {
		if !fd.Validate() {
			valid = false
		}
	}
	if !valid {
		f.p.notifier.Show(NotifyError, notifyFormInvalid)
		f.p.emit(PageEvent{Type: EventFormRejected, Target: f.firstInvalid()})
		return false
	}
	msg := FormMessage{
		Name:    strings.TrimSpace(f.fields[0].Value),
		Email:   strings.TrimSpace(f.fields[1].Value),
		Subject: strings.TrimSpace(f.fields[2].Value),
		Message: strings.TrimSpace(f.fields[3].Value),
	}
	f.state = submitSending
	f.timer = formSendDelay
	f.focus = -1
	f.p.emit(PageEvent{Type: EventFormSubmitted, Target: msg.Email})
	if f.OnSubmit != nil {
		f.OnSubmit(msg)
	}
	return true
}

func (f *ContactForm) firstInvalid() string {
	for _, fd := range f.fields {
		if fd.Error != "" {
			return fd.Name
		}
	}
	return ""
}

// ButtonLabel is the current text of the submit button.
func (f *ContactForm) ButtonLabel() string {
	switch f.state {
	case submitSending:
		return submitSendingLabel
	case submitSent:
		return submitSentLabel
	}
	return submitIdleLabel
}

// ButtonDisabled reports whether the submit button ignores clicks.
func (f *ContactForm) ButtonDisabled() bool {
	return f.state != submitIdle
}

// SubmitRect returns the submit button in document space.
func (f *ContactForm) SubmitRect() Rect { return f.submit }

// FieldRect returns the input box of the named field in document space.
func (f *ContactForm) FieldRect(name string) Rect {
	if fd := f.Field(name); fd != nil {
		return fd.rect
	}
	return Rect{}
}

func (f *ContactForm) reset() {
	for _, fd := range f.fields {
		fd.Value = ""
		fd.Error = ""
	}
}

func (f *ContactForm) onClick(ctx PointerContext) {
	if f.p.ScrollLocked() {
		return
	}
	x, y := ctx.X, ctx.DocY
	if f.submit.Contains(x, y) {
		f.Blur()
		f.Submit()
		return
	}
	for i, fd := range f.fields {
		if fd.rect.Contains(x, y) {
			f.setFocus(i)
			return
		}
	}
	f.Blur()
}

func (f *ContactForm) layout() {
	x0, w := f.p.column()
	w = min(w, 640)
	y := f.p.sections.claim(f.section, 4*(fieldLabelSize+8+fieldGap)+3*fieldBoxHeight+messageHeight+submitHeight)
	for _, fd := range f.fields {
		h := fieldBoxHeight
		if fd.Name == "message" {
			h = messageHeight
		}
		y += fieldLabelSize + 8
		fd.rect = Rect{X: x0, Y: y, Width: w, Height: h}
		y += h + fieldGap
	}
	f.submit = Rect{X: x0, Y: y, Width: submitWidth, Height: submitHeight}
}

func (f *ContactForm) update(dt float64) {
	if f.state == submitIdle {
		return
	}
	f.timer -= dt
	if f.timer > 1e-9 {
		return
	}
	switch f.state {
	case submitSending:
		f.reset()
		f.state = submitSent
		f.timer = formSentDisplay
		f.p.notifier.Show(NotifySuccess, notifyFormSent)
	case submitSent:
		f.state = submitIdle
	}
}

func (f *ContactForm) draw(s Surface) {
	p := f.p
	th := p.content.Theme
	if f.submit.Y+f.submit.Height-p.scrollY < 0 || f.fields[0].rect.Y-40-p.scrollY > p.height {
		return
	}
	for i, fd := range f.fields {
		r := p.toScreen(fd.rect)
		s.Text(fd.Label, r.X, r.Y-fieldLabelSize-6, TextStyle{Size: fieldLabelSize, Color: th.Muted})
		s.FillRect(r, th.Surface)
		border := th.Muted.WithAlpha(0.4)
		switch {
		case fd.Error != "":
			border = th.Accent
		case i == f.focus:
			border = th.Primary
		}
		s.StrokeRect(r, 1, border)
		v := fd.Value
		if i == f.focus {
			v += "|"
		}
		s.Text(v, r.X+12, r.Y+12, TextStyle{Size: 15, Color: th.Text})
		if fd.Error != "" {
			s.Text(fd.Error, r.X, r.Y+r.Height+3, TextStyle{Size: 12, Color: th.Accent})
		}
	}
	b := p.toScreen(f.submit)
	bg := th.Primary
	if f.ButtonDisabled() {
		bg = th.Primary.WithAlpha(0.6)
	}
	s.FillRect(b, bg)
	s.Text(f.ButtonLabel(), b.X+b.Width/2, b.Y+15, TextStyle{Size: 15, Bold: true, Color: th.Background, Align: TextAlignCenter})
}
