package internal

import (
	"slices"
	"strings"

	"github.com/umputun/themeswitch/app/theme"
)

// Document is a server-side page model the theme controller renders into.
// Handlers read it back to fill templates or json responses.
type Document struct {
	root     map[string]string
	elements map[string]*Button
}

// NewDocument makes a document. Each id gets a button element.
func NewDocument(ids ...string) *Document {
	d := &Document{root: map[string]string{}, elements: map[string]*Button{}}
	for _, id := range ids {
		d.elements[id] = &Button{ID: id}
	}
	return d
}

// SetRootAttribute implements theme.Document.
func (d *Document) SetRootAttribute(name, value string) { d.root[name] = value }

// RootAttribute returns a root attribute value, empty if unset.
func (d *Document) RootAttribute(name string) string { return d.root[name] }

// ElementByID implements theme.Document.
func (d *Document) ElementByID(id string) (theme.Control, bool) {
	b, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return b, true
}

// Button returns the button with the given id, nil if absent.
func (d *Document) Button(id string) *Button { return d.elements[id] }

// Button is a toggle button with an icon and a text span.
type Button struct {
	ID        string
	IconClass string
	Text      string
	classes   []string
	onClick   []func()
}

// SetIconClass implements theme.Control.
func (b *Button) SetIconClass(class string) { b.IconClass = class }

// SetText implements theme.Control.
func (b *Button) SetText(text string) { b.Text = text }

// AddClass implements theme.Control.
func (b *Button) AddClass(class string) {
	if !slices.Contains(b.classes, class) {
		b.classes = append(b.classes, class)
	}
}

// RemoveClass implements theme.Control.
func (b *Button) RemoveClass(class string) {
	b.classes = slices.DeleteFunc(b.classes, func(c string) bool { return c == class })
}

// OnClick implements theme.Control.
func (b *Button) OnClick(fn func()) { b.onClick = append(b.onClick, fn) }

// Click fires the registered click handlers.
func (b *Button) Click() {
	for _, fn := range b.onClick {
		fn()
	}
}

// Classes returns the class attribute value.
func (b *Button) Classes() string { return strings.Join(b.classes, " ") }
