package page

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	contactdomain "folio/internal/modules/contact/domain"
	contactdto "folio/internal/modules/contact/dto"
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

type submittedMsg struct {
	status contactdomain.Status
	err    error
}

// clearStatusMsg carries the sequence number of the status it clears; a
// newer status makes it stale.
type clearStatusMsg struct{ seq int }

type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int
	status  contactdomain.Status
	seq     int
	errText string

	clearAfter time.Duration
}

func newContactForm(t Translator) contactForm {
	name := textinput.New()
	name.CharLimit = 120
	email := textinput.New()
	email.CharLimit = 254
	msg := textarea.New()
	msg.ShowLineNumbers = false
	msg.SetHeight(4)
	msg.CharLimit = 4000
	f := contactForm{name: name, email: email, message: msg, focus: -1, clearAfter: contactdomain.StatusClearAfter}
	f.retranslate(t)
	return f
}

func (f *contactForm) retranslate(t Translator) {
	f.name.Placeholder = t.T("contact.form.namePlaceholder")
	f.email.Placeholder = t.T("contact.form.emailPlaceholder")
	f.message.Placeholder = t.T("contact.form.messagePlaceholder")
}

func (f *contactForm) setWidth(w int) {
	w = max(w, 10)
	f.name.Width = w
	f.email.Width = w
	f.message.SetWidth(w)
}

func (f contactForm) editing() bool { return f.focus >= 0 }

func (f *contactForm) focusField(i int) tea.Cmd {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	f.focus = ((i % fieldCount) + fieldCount) % fieldCount
	switch f.focus {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	default:
		return f.message.Focus()
	}
}

func (f *contactForm) blur() {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	f.focus = -1
}

func (f *contactForm) reset() {
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
}

func (f contactForm) input() contactdto.SubmitInput {
	return contactdto.SubmitInput{Name: f.name.Value(), Email: f.email.Value(), Message: f.message.Value()}
}

// submit starts one send. A form already sending ignores the request.
func (f *contactForm) submit(port ContactPort) tea.Cmd {
	if f.status == contactdomain.StatusSending || port == nil {
		return nil
	}
	f.status = contactdomain.StatusSending
	f.errText = ""
	f.seq++
	in := f.input()
	return func() tea.Msg {
		out, err := port.Submit(context.Background(), in)
		return submittedMsg{status: contactdomain.Status(out.Status), err: err}
	}
}

func (f *contactForm) settle(msg submittedMsg) tea.Cmd {
	if msg.err != nil || msg.status != contactdomain.StatusSuccess {
		f.status = contactdomain.StatusError
		if msg.err != nil {
			f.errText = msg.err.Error()
		}
	} else {
		f.status = contactdomain.StatusSuccess
		f.reset()
	}
	f.seq++
	seq := f.seq
	return tea.Tick(f.clearAfter, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (f *contactForm) clear(msg clearStatusMsg) {
	if msg.seq == f.seq && f.status != contactdomain.StatusSending {
		f.status = contactdomain.StatusIdle
		f.errText = ""
	}
}

func (f contactForm) update(msg tea.Msg) (contactForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return f, cmd
}
