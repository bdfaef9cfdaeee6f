package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/themeswitch/app/store"
	"github.com/umputun/themeswitch/app/theme"
)

type memStore map[string]string

func (m memStore) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memStore) Set(key, value string) error {
	m[key] = value
	return nil
}

func TestDocument_WithController(t *testing.T) {
	st := memStore{}
	doc := NewDocument(theme.ControlID)
	c := theme.New(doc, st, nil)
	require.True(t, c.Active())

	btn := doc.Button(theme.ControlID)
	require.NotNil(t, btn)
	assert.Equal(t, "light", doc.RootAttribute(theme.Attribute))
	assert.Equal(t, "bi bi-moon", btn.IconClass)
	assert.Equal(t, "switch to dark", btn.Text)
	assert.Equal(t, "btn-outline-light", btn.Classes())

	btn.Click()
	assert.Equal(t, "dark", doc.RootAttribute(theme.Attribute))
	assert.Equal(t, "bi bi-sun", btn.IconClass)
	assert.Equal(t, "switch to light", btn.Text)
	assert.Equal(t, "btn-outline-warning", btn.Classes())
	assert.Equal(t, "dark", st[theme.StorageKey])
}

func TestDocument_NoControl(t *testing.T) {
	doc := NewDocument()
	c := theme.New(doc, memStore{}, nil)
	assert.False(t, c.Active())
	assert.Empty(t, doc.RootAttribute(theme.Attribute))
	assert.Nil(t, doc.Button(theme.ControlID))
}

func TestButton_Classes(t *testing.T) {
	b := &Button{}
	b.AddClass("btn")
	b.AddClass("btn-outline-light")
	b.AddClass("btn-outline-light")
	assert.Equal(t, "btn btn-outline-light", b.Classes())

	b.RemoveClass("btn-outline-light")
	b.RemoveClass("missing")
	assert.Equal(t, "btn", b.Classes())
}

func TestClientID(t *testing.T) {
	t.Run("issues cookie when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		rec := httptest.NewRecorder()
		id := ClientID(rec, req, "/")
		require.NotEmpty(t, id)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, ClientCookieName, cookies[0].Name)
		assert.Equal(t, id, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("reuses valid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: ClientCookieName, Value: "6f1c1f2e-5f5b-4a53-9b55-3c1c1a9b4c11"})
		rec := httptest.NewRecorder()
		assert.Equal(t, "6f1c1f2e-5f5b-4a53-9b55-3c1c1a9b4c11", ClientID(rec, req, "/"))
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("replaces invalid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: ClientCookieName, Value: "../../etc"})
		rec := httptest.NewRecorder()
		id := ClientID(rec, req, "/")
		assert.NotEqual(t, "../../etc", id)
		require.Len(t, rec.Result().Cookies(), 1)
	})
}

type prefsMap map[string]string

func (m prefsMap) Get(_ context.Context, scope, name string) (string, error) {
	v, ok := m[scope+"."+name]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (m prefsMap) Set(_ context.Context, scope, name, value string) error {
	m[scope+"."+name] = value
	return nil
}

func TestController(t *testing.T) {
	t.Run("toggle writes the client preference", func(t *testing.T) {
		prefs := prefsMap{}
		doc := NewDocument(theme.ControlID)

		c, err := Controller(context.Background(), prefs, "client-1", nil, doc)
		require.NoError(t, err)
		require.True(t, c.Active())
		require.NoError(t, c.Toggle())

		assert.Equal(t, "dark", prefs["client-1."+theme.StorageKey])
		assert.Equal(t, "dark", doc.RootAttribute(theme.Attribute))
	})

	t.Run("empty client id", func(t *testing.T) {
		_, err := Controller(context.Background(), prefsMap{}, "", nil, NewDocument(theme.ControlID))
		require.Error(t, err)
	})
}
