// Package theme implements the light/dark theme switcher.
//
// Controller keeps the document root attribute, the toggle control and the persisted
// preference in step. The page surface is a Document and the preference storage is a Store.
package theme

import (
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themeswitch/app/enum"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/localizer.go -pkg mocks -skip-ensure -fmt goimports . Localizer

// fixed names shared with the page templates
const (
	StorageKey = "theme"       // key of the persisted preference
	Attribute  = "data-theme"  // root element attribute set to the theme name
	ControlID  = "themeToggle" // id of the toggle control
)

// Store is the durable key-value storage of the preference.
// ok is false when the key was never written.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Document is the page surface the controller renders into.
type Document interface {
	SetRootAttribute(name, value string)
	ElementByID(id string) (Control, bool)
}

// Control is the toggle button with its icon and text sub-elements.
type Control interface {
	SetIconClass(class string)
	SetText(text string)
	AddClass(class string)
	RemoveClass(class string)
	OnClick(fn func())
}

// Localizer resolves a label message id to text, returning fallback if it can't.
type Localizer interface {
	Text(id, fallback string) string
}

// Controller owns the current theme of a single page.
type Controller struct {
	doc     Document
	control Control // nil when the page has no toggle
	store   Store
	labels  Localizer
	current enum.Theme
}

// New makes a controller for the page. If the page has no toggle control the controller
// is inert: nothing is read, written or registered. labels may be nil for default labels.
func New(doc Document, st Store, labels Localizer) *Controller {
	c := &Controller{doc: doc, store: st, labels: labels, current: enum.ThemeLight}
	ctrl, ok := doc.ElementByID(ControlID)
	if !ok {
		return c
	}
	c.control = ctrl
	c.init()
	return c
}

func (c *Controller) init() {
	c.current = c.load()
	c.applyTheme(c.current)
	c.control.OnClick(func() {
		if err := c.Toggle(); err != nil {
			log.Printf("[WARN] theme toggle not persisted: %v", err)
		}
	})
	c.syncControlAppearance()
}

// Active reports whether the page has a toggle control.
func (c *Controller) Active() bool { return c.control != nil }

// Current returns the current theme.
func (c *Controller) Current() enum.Theme { return c.current }

// State returns the display state of the current theme with the label localized.
func (c *Controller) State() DisplayState {
	ds := Display(c.current)
	ds.Label = c.label(ds)
	return ds
}

// Toggle flips the theme, applies it, syncs the control and persists the new value.
// The page is updated even if persisting fails; the error is returned to the caller.
// Toggle on an inert controller does nothing.
func (c *Controller) Toggle() error {
	if !c.Active() {
		return nil
	}
	c.current = c.current.Toggle()
	c.applyTheme(c.current)
	c.syncControlAppearance()
	return c.persistTheme()
}

func (c *Controller) load() enum.Theme {
	val, ok, err := c.store.Get(StorageKey)
	if err != nil {
		log.Printf("[WARN] can't read theme preference, using %s: %v", enum.ThemeLight, err)
		return enum.ThemeLight
	}
	if !ok {
		return enum.ThemeLight
	}
	t, err := enum.ParseTheme(val)
	if err != nil {
		log.Printf("[WARN] ignoring stored theme %q: %v", val, err)
		return enum.ThemeLight
	}
	return t
}

func (c *Controller) applyTheme(t enum.Theme) {
	c.doc.SetRootAttribute(Attribute, Display(t).Attribute)
}

func (c *Controller) syncControlAppearance() {
	ds := Display(c.current)
	c.control.SetIconClass(ds.Icon)
	c.control.SetText(c.label(ds))
	c.control.RemoveClass(Display(c.current.Toggle()).Class)
	c.control.AddClass(ds.Class)
}

func (c *Controller) persistTheme() error {
	if err := c.store.Set(StorageKey, c.current.String()); err != nil {
		return fmt.Errorf("persist theme %s: %w", c.current, err)
	}
	return nil
}

func (c *Controller) label(ds DisplayState) string {
	if c.labels == nil {
		return ds.Label
	}
	return c.labels.Text(ds.LabelID, ds.Label)
}
