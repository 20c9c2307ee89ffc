package extension

// Host is the contract the flymd editor provides to extensions. The UI
// framework, menu and modal rendering, and the activation lifecycle all
// live on the host side; the assistant only consumes this surface.
type Host interface {
	AddMenuItem(item MenuItem)
	ShowModal(modal Modal)
	GetEditorValue() string
	SetEditorValue(value string)
	Notify(message string)
}

// MenuItem is an entry under the host's "AI Assistant" menu.
type MenuItem struct {
	ID     string
	Title  string
	Action func()
}

// ModalField is one input in a settings modal. Masked fields are
// rendered obscured by the host (API keys).
type ModalField struct {
	Name   string
	Label  string
	Value  string
	Masked bool
}

// ModalButton carries an optional click handler receiving the collected
// field values keyed by field name. A nil OnClick dismisses the modal
// with no state change.
type ModalButton struct {
	Label   string
	OnClick func(values map[string]string)
}

// Modal describes a form the host renders.
type Modal struct {
	Title   string
	Fields  []ModalField
	Buttons []ModalButton
}
