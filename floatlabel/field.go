package floatlabel

import (
	fv "github.com/Gobd/fieldvalidation"
)

// ErrorDisplay shows and hides a validation message next to a field.
type ErrorDisplay interface {
	ShowError(message string)
	ClearError()
}

// Position is where the placeholder label sits.
type Position int

const (
	// Origin is the resting position inside the field, used while it is empty.
	Origin Position = iota
	// Top is above the text, used while the field has text.
	Top
)

func (p Position) String() string {
	if p == Top {
		return "top"
	}
	return "origin"
}

// Line is the phase of the underline drawn below the field.
type Line int

const (
	LineNormal Line = iota
	LineActive
	LineFilled
)

func (l Line) String() string {
	switch l {
	case LineActive:
		return "active"
	case LineFilled:
		return "filled"
	}
	return "normal"
}

// State is a snapshot of a field for rendering.
type State struct {
	Name        string
	Placeholder string
	Text        string
	Label       Position
	Line        Line
	Editing     bool
	Error       string
	InError     bool
}

// Field is a text input with a floating placeholder label. It is not safe
// for concurrent use.
type Field struct {
	Name string

	// Rules is evaluated in order on submit. Assigning replaces the list.
	Rules fv.RuleSet

	placeholder string
	text        string
	editing     bool
	label       Position
	line        Line
	errMsg      string
	inError     bool
}

var _ ErrorDisplay = (*Field)(nil)

// NewField returns an empty field with its label at the origin.
func NewField(name, placeholder string, rules ...fv.Rule) *Field {
	return &Field{
		Name:        name,
		Rules:       rules,
		placeholder: placeholder,
	}
}

// SetPlaceholder changes the label text.
func (f *Field) SetPlaceholder(p string) {
	f.placeholder = p
}

// Text returns the current text.
func (f *Field) Text() string {
	return f.text
}

// HasText reports whether the field holds any text.
func (f *Field) HasText() bool {
	return f.text != ""
}

// BeginEditing marks the field as focused.
func (f *Field) BeginEditing() {
	f.editing = true
	f.line = LineActive
}

// EndEditing marks the field as no longer focused.
func (f *Field) EndEditing() {
	f.editing = false
	if f.HasText() {
		f.line = LineFilled
	} else {
		f.line = LineNormal
	}
}

// SetText replaces the text, moves the label and clears any error.
func (f *Field) SetText(s string) {
	f.text = s
	if f.HasText() {
		f.label = Top
	} else {
		f.label = Origin
	}
	f.ClearError()
}

// ShowError displays message and puts the field in its error state.
func (f *Field) ShowError(message string) {
	f.errMsg = message
	f.inError = true
}

// ClearError hides the error message.
func (f *Field) ClearError() {
	f.errMsg = ""
	f.inError = false
}

// Validate checks the current text against Rules and returns the first
// failure without touching the error display.
func (f *Field) Validate() error {
	text := f.text
	return f.Rules.Check(&text)
}

// State returns a snapshot of the field.
func (f *Field) State() State {
	return State{
		Name:        f.Name,
		Placeholder: f.placeholder,
		Text:        f.text,
		Label:       f.label,
		Line:        f.line,
		Editing:     f.editing,
		Error:       f.errMsg,
		InError:     f.inError,
	}
}
