package view

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/diewo77/go-relief/auth"
	"github.com/diewo77/go-relief/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layout.html":          {Data: []byte(`<html>{{ template "flashes" . }}{{ template "content" . }}</html>`)},
		"partials/flash.html":  {Data: []byte(`{{ define "flashes" }}{{ range .Notices }}[{{ .Category }}:{{ .Message }}]{{ end }}{{ end }}`)},
		"page.html":            {Data: []byte(`{{ define "content" }}hello {{ t "required" }} {{ deref .Amount }}|{{ deref .Missing }}|{{ .IsLoggedIn }}{{ end }}`)},
		"standalone.html":      {Data: []byte(`<!DOCTYPE html><p>{{ .Msg }}</p>`)},
		"broken.html":          {Data: []byte(`{{ define "content" }}{{ .Nope.Deeper }}{{ end }}`)},
	}
}

func TestRenderWrapsLayoutAndInjectsDefaults(t *testing.T) {
	t.Cleanup(ResetForTests)
	SetSource(testFS())

	amount := 50.0
	var missing *int
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	err := Render(rr, req, "page.html", map[string]any{
		"Amount":  &amount,
		"Missing": missing,
		"Notices": []Notice{{Category: NoticeDanger, Message: "boom"}},
	})
	require.NoError(t, err)
	body := rr.Body.String()
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, body, "[danger:boom]")
	assert.Contains(t, body, "hello Required 50.00||false")
	assert.True(t, strings.HasPrefix(body, "<html>"))
}

func TestRenderUsesRequestLanguage(t *testing.T) {
	t.Cleanup(ResetForTests)
	SetSource(testFS())

	// First render warms the cache with the default language.
	require.NoError(t, Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), "page.html", nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(i18n.WithLang(req.Context(), "fr"))
	rr := httptest.NewRecorder()
	require.NoError(t, Render(rr, req, "page.html", nil))
	assert.Contains(t, rr.Body.String(), "hello Requis")
}

func TestRenderReportsLoggedInIdentity(t *testing.T) {
	t.Cleanup(ResetForTests)
	SetSource(testFS())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: 1, Role: "admin"}))
	rr := httptest.NewRecorder()
	require.NoError(t, Render(rr, req, "page.html", nil))
	assert.Contains(t, rr.Body.String(), "|true")
}

func TestRenderStandaloneDocument(t *testing.T) {
	t.Cleanup(ResetForTests)
	SetSource(testFS())

	rr := httptest.NewRecorder()
	require.NoError(t, RenderStatus(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot, "standalone.html", map[string]any{"Msg": "hi"}))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotContains(t, rr.Body.String(), "<html>")
	assert.Contains(t, rr.Body.String(), "<p>hi</p>")
}

func TestRenderErrorsLeaveResponseUntouched(t *testing.T) {
	t.Cleanup(ResetForTests)
	SetSource(testFS())

	rr := httptest.NewRecorder()
	err := Render(rr, httptest.NewRequest(http.MethodGet, "/", nil), "missing.html", nil)
	assert.Error(t, err)

	err = Render(rr, httptest.NewRequest(http.MethodGet, "/", nil), "broken.html", map[string]any{"Nope": 3})
	assert.Error(t, err)
	assert.Zero(t, rr.Body.Len())
}

func TestEmbeddedPagesParse(t *testing.T) {
	t.Cleanup(ResetForTests)
	ResetForTests()
	pages := []string{"login.html", "register.html", "dashboard.html", "reliefcenters.html", "volunteers.html", "victims.html", "donations.html", "supplies.html", "alerts.html"}
	for _, p := range pages {
		rr := httptest.NewRecorder()
		err := Render(rr, httptest.NewRequest(http.MethodGet, "/", nil), p, map[string]any{"Username": "", "RoleInput": ""})
		require.NoError(t, err, p)
		assert.Contains(t, rr.Body.String(), "Relief Desk", p)
	}
}
