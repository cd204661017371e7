package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"ticketdesk/internal/api"
	"ticketdesk/internal/debug"
	"ticketdesk/internal/domain"
)

// SubmitFailedMessage is shown when the create request never reached the backend.
const SubmitFailedMessage = "Submission failed. Please try again."

// FormState is the lifecycle of the ticket form.
type FormState int

const (
	FormIdle FormState = iota
	FormClassifying
	FormSubmitting
	FormError
	FormSuggested
)

func (s FormState) String() string {
	switch s {
	case FormClassifying:
		return "classifying"
	case FormSubmitting:
		return "submitting"
	case FormError:
		return "error"
	case FormSuggested:
		return "suggested"
	default:
		return "idle"
	}
}

type formField int

const (
	formFieldTitle formField = iota
	formFieldDescription
	formFieldCategory
	formFieldPriority
	formFieldSubmit
	formFieldCount
)

var keySubmit = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("Ctrl+S", "Submit"))

// TicketForm collects a new ticket, asks the backend for a classification
// when the description loses focus, and submits.
type TicketForm struct {
	client api.Client

	title       textinput.Model
	description textarea.Model
	category    selector
	priority    selector
	spinner     spinner.Model

	field   formField
	focused bool
	width   int

	state      FormState
	errText    string
	suggestion *domain.Suggestion

	// gen identifies the current form contents. Classification and submit
	// results carrying an older gen are dropped.
	gen uint64
}

// NewTicketForm creates a form with default values.
func NewTicketForm(client api.Client) *TicketForm {
	title := textinput.New()
	title.Placeholder = "Short summary"
	title.Prompt = ""
	title.CharLimit = domain.TitleMaxLength

	desc := textarea.New()
	desc.Placeholder = "Describe the problem"
	desc.ShowLineNumbers = false
	desc.SetHeight(4)
	desc.CharLimit = 5000

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	f := &TicketForm{
		client:      client,
		title:       title,
		description: desc,
		category:    newSelector("Category", stringsOf(domain.AllCategories()), titleLabel, false),
		priority:    newSelector("Priority", stringsOf(domain.AllPriorities()), titleLabel, false),
		spinner:     sp,
	}
	f.SetWidth(60)
	f.resetValues()
	return f
}

// State returns the current lifecycle state.
func (f *TicketForm) State() FormState {
	return f.state
}

// ErrorText returns the message shown in the error state.
func (f *TicketForm) ErrorText() string {
	return f.errText
}

// Suggestion returns the displayed suggestion, if any.
func (f *TicketForm) Suggestion() (domain.Suggestion, bool) {
	if f.suggestion == nil {
		return domain.Suggestion{}, false
	}
	return *f.suggestion, true
}

// Values returns the ticket as it would be submitted.
func (f *TicketForm) Values() domain.NewTicket {
	return domain.NewTicket{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		Category:    domain.Category(f.category.Value()),
		Priority:    domain.Priority(f.priority.Value()),
	}
}

// SetWidth sets the rendering width.
func (f *TicketForm) SetWidth(w int) {
	f.width = w
	inner := max(10, w-18)
	f.title.Width = inner
	f.description.SetWidth(inner)
}

// Focus gives the form keyboard focus on its first (or last) field.
func (f *TicketForm) Focus(last bool) tea.Cmd {
	f.focused = true
	f.field = formFieldTitle
	if last {
		f.field = formFieldSubmit
	}
	return f.syncFocus()
}

// Blur removes keyboard focus; leaving the description may start classification.
func (f *TicketForm) Blur() tea.Cmd {
	leaving := f.focused && f.field == formFieldDescription
	f.focused = false
	f.syncFocus()
	if leaving {
		return f.classify()
	}
	return nil
}

// Advance moves focus by dir (+1/-1). It returns false when focus would leave
// the form; the caller then blurs it.
func (f *TicketForm) Advance(dir int) (bool, tea.Cmd) {
	next := int(f.field) + dir
	if next < 0 || next >= int(formFieldCount) {
		return false, nil
	}
	leaving := f.field == formFieldDescription
	f.field = formField(next)
	cmds := []tea.Cmd{f.syncFocus()}
	if leaving {
		cmds = append(cmds, f.classify())
	}
	return true, tea.Batch(cmds...)
}

func (f *TicketForm) syncFocus() tea.Cmd {
	f.category.focused = f.focused && f.field == formFieldCategory
	f.priority.focused = f.focused && f.field == formFieldPriority

	f.title.Blur()
	f.description.Blur()
	if !f.focused {
		return nil
	}
	switch f.field {
	case formFieldTitle:
		return f.title.Focus()
	case formFieldDescription:
		return f.description.Focus()
	}
	return nil
}

// Update handles keys while focused and async results at any time.
func (f *TicketForm) Update(msg tea.Msg) (*TicketForm, tea.Cmd) {
	switch msg := msg.(type) {
	case classifyDoneMsg:
		f.handleClassified(msg)
		return f, nil
	case createDoneMsg:
		return f, f.handleCreated(msg)
	case spinner.TickMsg:
		if f.state != FormClassifying && f.state != FormSubmitting {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd
	case tea.KeyMsg:
		if !f.focused {
			return f, nil
		}
		return f, f.handleKey(msg)
	}
	return f, nil
}

func (f *TicketForm) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keySubmit) {
		return f.Submit()
	}

	var cmd tea.Cmd
	switch f.field {
	case formFieldTitle:
		if key.Matches(msg, keyActivate) {
			_, cmd = f.Advance(1)
			return cmd
		}
		f.title, cmd = f.title.Update(msg)
	case formFieldDescription:
		f.description, cmd = f.description.Update(msg)
	case formFieldCategory:
		cycleSelector(&f.category, msg)
	case formFieldPriority:
		cycleSelector(&f.priority, msg)
	case formFieldSubmit:
		if key.Matches(msg, keyActivate) {
			return f.Submit()
		}
	}
	return cmd
}

func cycleSelector(s *selector, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keyCycleNext):
		s.Next()
	case key.Matches(msg, keyCyclePrev):
		s.Prev()
	}
}

// classify starts a classification request for the current description.
func (f *TicketForm) classify() tea.Cmd {
	desc := f.description.Value()
	if f.state == FormSubmitting || !domain.ShouldClassify(desc) {
		return nil
	}
	f.gen++
	f.state = FormClassifying
	f.errText = ""
	return tea.Batch(classifyCmd(f.client, desc, f.gen), f.spinner.Tick)
}

func (f *TicketForm) handleClassified(msg classifyDoneMsg) {
	if msg.gen != f.gen || f.state != FormClassifying {
		debug.L().Debug("classification result dropped", zap.Uint64("gen", msg.gen), zap.Uint64("current", f.gen))
		return
	}
	if msg.err != nil || !msg.suggestion.Complete() {
		if msg.err != nil {
			debug.L().Debug("classification failed", zap.Error(msg.err))
		}
		f.state = FormIdle
		return
	}
	s := msg.suggestion
	f.suggestion = &s
	f.category.SetValue(string(s.SuggestedCategory))
	f.priority.SetValue(string(s.SuggestedPriority))
	f.state = FormSuggested
}

// Submit validates and sends the ticket. It is ignored while a submission
// is in flight.
func (f *TicketForm) Submit() tea.Cmd {
	if f.state == FormSubmitting {
		return nil
	}
	values := f.Values()
	if err := values.Validate(); err != nil {
		f.state = FormError
		f.errText = err.Error()
		return nil
	}
	f.gen++
	f.state = FormSubmitting
	f.errText = ""
	return tea.Batch(createTicketCmd(f.client, values, f.gen), f.spinner.Tick)
}

func (f *TicketForm) handleCreated(msg createDoneMsg) tea.Cmd {
	if msg.gen != f.gen || f.state != FormSubmitting {
		return nil
	}
	switch {
	case msg.err != nil:
		debug.L().Debug("create ticket failed", zap.Error(msg.err))
		f.state = FormError
		f.errText = SubmitFailedMessage
		return nil
	case !msg.result.OK:
		f.state = FormError
		f.errText = msg.result.ErrorText()
		return nil
	}
	f.Reset()
	return emit(TicketCreatedMsg{Ticket: msg.result.Ticket})
}

// Reset restores the defaults and invalidates any in-flight classification.
func (f *TicketForm) Reset() {
	f.gen++
	f.resetValues()
	f.state = FormIdle
	f.errText = ""
	f.suggestion = nil
}

func (f *TicketForm) resetValues() {
	d := domain.DefaultNewTicket()
	f.title.SetValue(d.Title)
	f.description.SetValue(d.Description)
	f.category.SetValue(string(d.Category))
	f.priority.SetValue(string(d.Priority))
}

func (f *TicketForm) View() string {
	rows := []string{stylePaneTitle().Render("New Ticket")}

	rows = append(rows,
		lipgloss.JoinHorizontal(lipgloss.Left, styleFieldLabel(f.isField(formFieldTitle)).Render("Title"), f.title.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, styleFieldLabel(f.isField(formFieldDescription)).Render("Description"), f.description.View()),
		f.category.View(),
		f.priority.View(),
	)

	if f.suggestion != nil {
		rows = append(rows, styleSuccess().Render("Suggested: "+
			titleLabel(string(f.suggestion.SuggestedCategory))+" / "+
			titleLabel(string(f.suggestion.SuggestedPriority))))
	}

	label := "Submit Ticket"
	switch f.state {
	case FormSubmitting:
		label = f.spinner.View() + " Submitting..."
	case FormClassifying:
		rows = append(rows, styleDim().Render(f.spinner.View()+" Classifying..."))
	}
	button := styleButton(f.isField(formFieldSubmit), f.state == FormSubmitting).Render(label)
	rows = append(rows, button)

	if f.state == FormError && f.errText != "" {
		rows = append(rows, styleError().Width(max(10, f.width-4)).Render(f.errText))
	}

	return stylePane(f.focused).Width(max(20, f.width-2)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (f *TicketForm) isField(field formField) bool {
	return f.focused && f.field == field
}
