package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/themeswitch/app/enum"
	"github.com/umputun/themeswitch/app/theme/mocks"
)

func TestController_Scenario(t *testing.T) {
	st := newMemStore()
	doc := newFakeDoc(true)

	c := New(doc, st, nil)
	require.True(t, c.Active())

	// page load with nothing persisted
	assert.Equal(t, enum.ThemeLight, c.Current())
	assert.Equal(t, "light", doc.attrs[Attribute])
	assert.Equal(t, "bi bi-moon", doc.btn.icon)
	assert.Equal(t, "switch to dark", doc.btn.text)
	assert.Equal(t, []string{"btn-outline-light"}, doc.btn.classList())
	assert.Empty(t, st.data, "init must not persist")

	// first click
	doc.btn.click()
	assert.Equal(t, enum.ThemeDark, c.Current())
	assert.Equal(t, "dark", doc.attrs[Attribute])
	assert.Equal(t, "bi bi-sun", doc.btn.icon)
	assert.Equal(t, "switch to light", doc.btn.text)
	assert.Equal(t, []string{"btn-outline-warning"}, doc.btn.classList())
	assert.Equal(t, "dark", st.data[StorageKey])

	// second click
	doc.btn.click()
	assert.Equal(t, "light", doc.attrs[Attribute])
	assert.Equal(t, "light", st.data[StorageKey])
	assert.Equal(t, []string{"btn-outline-light"}, doc.btn.classList())
}

func TestController_TogglePersistsInOrder(t *testing.T) {
	doc := newFakeDoc(true)
	var steps []string
	doc.onAttr = func() { steps = append(steps, "apply") }
	doc.btn.onChange = func() { steps = append(steps, "sync") }
	st := &mocks.StoreMock{
		GetFunc: func(string) (string, bool, error) { return "", false, nil },
		SetFunc: func(string, string) error { steps = append(steps, "persist"); return nil },
	}

	c := New(doc, st, nil)
	steps = nil
	require.NoError(t, c.Toggle())

	require.NotEmpty(t, steps)
	assert.Equal(t, "apply", steps[0])
	assert.Equal(t, "persist", steps[len(steps)-1])
	assert.Contains(t, steps, "sync")
	require.Len(t, st.SetCalls(), 1)
	assert.Equal(t, StorageKey, st.SetCalls()[0].Key)
	assert.Equal(t, "dark", st.SetCalls()[0].Value)
}

func TestController_ToggleParity(t *testing.T) {
	for _, start := range enum.ThemeValues() {
		t.Run(start.String(), func(t *testing.T) {
			st := newMemStore()
			st.data[StorageKey] = start.String()
			c := New(newFakeDoc(true), st, nil)

			for i := 1; i <= 6; i++ {
				require.NoError(t, c.Toggle())
				if i%2 == 0 {
					assert.Equal(t, start, c.Current())
				} else {
					assert.Equal(t, start.Toggle(), c.Current())
				}
			}
		})
	}
}

func TestController_RoundTrip(t *testing.T) {
	st := newMemStore()
	c := New(newFakeDoc(true), st, nil)
	require.NoError(t, c.Toggle())

	reloaded := New(newFakeDoc(true), st, nil)
	assert.Equal(t, enum.ThemeDark, reloaded.Current())
	assert.Equal(t, c.Current(), reloaded.Current())
}

func TestController_Defaults(t *testing.T) {
	t.Run("no persisted value", func(t *testing.T) {
		c := New(newFakeDoc(true), newMemStore(), nil)
		assert.Equal(t, enum.ThemeLight, c.Current())
	})

	t.Run("garbage persisted value", func(t *testing.T) {
		st := newMemStore()
		st.data[StorageKey] = "solarized"
		c := New(newFakeDoc(true), st, nil)
		assert.Equal(t, enum.ThemeLight, c.Current())
	})

	t.Run("store read error", func(t *testing.T) {
		st := &mocks.StoreMock{
			GetFunc: func(string) (string, bool, error) { return "", false, assert.AnError },
		}
		doc := newFakeDoc(true)
		c := New(doc, st, nil)
		assert.Equal(t, enum.ThemeLight, c.Current())
		assert.Equal(t, "light", doc.attrs[Attribute])
	})
}

func TestController_AbsentControl(t *testing.T) {
	st := &mocks.StoreMock{} // any call would panic
	doc := newFakeDoc(false)

	c := New(doc, st, nil)
	assert.False(t, c.Active())
	assert.Empty(t, doc.attrs)
	assert.Empty(t, st.GetCalls())

	require.NoError(t, c.Toggle())
	assert.Empty(t, doc.attrs)
	assert.Empty(t, st.SetCalls())
	assert.Equal(t, enum.ThemeLight, c.Current())
	assert.Equal(t, "light", c.Current().String())
}

func TestNew_BindsDocumentAndControl(t *testing.T) {
	t.Run("with control", func(t *testing.T) {
		doc := newFakeDoc(true)
		c := New(doc, newMemStore(), nil)
		assert.Same(t, doc, c.doc)
		assert.Same(t, doc.btn, c.control)
		assert.Len(t, doc.btn.handlers, 1)
	})

	t.Run("without control", func(t *testing.T) {
		doc := newFakeDoc(false)
		c := New(doc, newMemStore(), nil)
		assert.Same(t, doc, c.doc)
		assert.Nil(t, c.control)
	})
}

func TestController_PersistError(t *testing.T) {
	st := &mocks.StoreMock{
		GetFunc: func(string) (string, bool, error) { return "light", true, nil },
		SetFunc: func(string, string) error { return assert.AnError },
	}
	doc := newFakeDoc(true)
	c := New(doc, st, nil)

	err := c.Toggle()
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, enum.ThemeDark, c.Current())
	assert.Equal(t, "dark", doc.attrs[Attribute])
	assert.Equal(t, "bi bi-sun", doc.btn.icon)

	// click handler logs and keeps going
	doc.btn.click()
	assert.Equal(t, enum.ThemeLight, c.Current())
}

func TestController_ApplyIdempotent(t *testing.T) {
	doc := newFakeDoc(true)
	c := New(doc, newMemStore(), nil)

	c.applyTheme(c.Current())
	c.syncControlAppearance()
	attr, icon, text, classes := doc.attrs[Attribute], doc.btn.icon, doc.btn.text, doc.btn.classList()

	c.applyTheme(c.Current())
	c.syncControlAppearance()
	assert.Equal(t, attr, doc.attrs[Attribute])
	assert.Equal(t, icon, doc.btn.icon)
	assert.Equal(t, text, doc.btn.text)
	assert.Equal(t, classes, doc.btn.classList())
}

func TestController_ClassesMutuallyExclusive(t *testing.T) {
	doc := newFakeDoc(true)
	doc.btn.classes["btn"] = true
	c := New(doc, newMemStore(), nil)

	for range 5 {
		require.NoError(t, c.Toggle())
		light, dark := doc.btn.classes["btn-outline-light"], doc.btn.classes["btn-outline-warning"]
		assert.True(t, light != dark, "exactly one theme class expected, got %v", doc.btn.classList())
		assert.True(t, doc.btn.classes["btn"], "unrelated classes are kept")
	}
}

func TestController_State(t *testing.T) {
	loc := &mocks.LocalizerMock{
		TextFunc: func(id, fallback string) string { return "[" + id + "]" },
	}
	doc := newFakeDoc(true)
	c := New(doc, newMemStore(), loc)

	assert.Equal(t, "[SwitchToDark]", doc.btn.text)
	st := c.State()
	assert.Equal(t, "light", st.Attribute)
	assert.Equal(t, "[SwitchToDark]", st.Label)

	require.NoError(t, c.Toggle())
	assert.Equal(t, "[SwitchToLight]", doc.btn.text)
	assert.Equal(t, "[SwitchToLight]", c.State().Label)
}

// memStore is an in-memory Store
type memStore struct {
	data map[string]string
}

func newMemStore() *memStore { return &memStore{data: map[string]string{}} }

func (m *memStore) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(key, value string) error {
	m.data[key] = value
	return nil
}

// fakeDoc is a minimal element tree with an optional toggle button
type fakeDoc struct {
	attrs  map[string]string
	btn    *fakeButton
	onAttr func()
}

func newFakeDoc(withControl bool) *fakeDoc {
	d := &fakeDoc{attrs: map[string]string{}}
	if withControl {
		d.btn = &fakeButton{classes: map[string]bool{}}
	}
	return d
}

func (d *fakeDoc) SetRootAttribute(name, value string) {
	d.attrs[name] = value
	if d.onAttr != nil {
		d.onAttr()
	}
}

func (d *fakeDoc) ElementByID(id string) (Control, bool) {
	if d.btn == nil || id != ControlID {
		return nil, false
	}
	return d.btn, true
}

type fakeButton struct {
	icon     string
	text     string
	classes  map[string]bool
	handlers []func()
	onChange func()
}

func (b *fakeButton) SetIconClass(class string) { b.icon = class; b.changed() }
func (b *fakeButton) SetText(text string)       { b.text = text; b.changed() }
func (b *fakeButton) AddClass(class string)     { b.classes[class] = true; b.changed() }
func (b *fakeButton) RemoveClass(class string)  { delete(b.classes, class); b.changed() }
func (b *fakeButton) OnClick(fn func())         { b.handlers = append(b.handlers, fn) }

func (b *fakeButton) changed() {
	if b.onChange != nil {
		b.onChange()
	}
}

func (b *fakeButton) click() {
	for _, h := range b.handlers {
		h()
	}
}

// classList returns theme classes only, in a stable order
func (b *fakeButton) classList() []string {
	var res []string
	for _, c := range []string{"btn-outline-light", "btn-outline-warning"} {
		if b.classes[c] {
			res = append(res, c)
		}
	}
	return res
}
