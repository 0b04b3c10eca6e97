package view

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"reflect"
	"sync"
	"time"

	"github.com/diewo77/go-relief/auth"
	"github.com/diewo77/go-relief/i18n"
	"github.com/diewo77/go-relief/templates"
)

// Notice categories, matching the CSS alert classes used by the layout.
const (
	NoticeSuccess = "success"
	NoticeDanger  = "danger"
	NoticeInfo    = "info"
)

// Notice is a one-shot message shown on the rendered page.
type Notice struct {
	Category string
	Message  string
}

var (
	mu       sync.RWMutex
	source   fs.FS = templates.FS
	devMode  bool
	tplCache = map[string]*template.Template{}
)

// SetSource overrides the template file system (useful for tests or a live directory in dev).
func SetSource(fsys fs.FS) {
	if fsys == nil {
		return
	}
	mu.Lock()
	source = fsys
	tplCache = map[string]*template.Template{}
	mu.Unlock()
}

// SetDevMode disables the template cache so edits are picked up on every request.
func SetDevMode(dev bool) {
	mu.Lock()
	devMode = dev
	mu.Unlock()
}

// ResetForTests restores the embedded templates and clears the cache.
func ResetForTests() {
	mu.Lock()
	source = templates.FS
	devMode = false
	tplCache = map[string]*template.Template{}
	mu.Unlock()
}

// Funcs returns the request-bound func map.
func Funcs(r *http.Request) template.FuncMap {
	lang := i18n.DefaultLang
	if r != nil {
		lang = i18n.LangFrom(r.Context())
	}
	return template.FuncMap{
		"t":     func(code string) string { return i18n.T(lang, code) },
		"lang":  func() string { return lang },
		"year":  func() int { return time.Now().Year() },
		"deref": deref,
		// dict creates a map from key-value pairs for passing to sub-templates.
		// Usage: {{ template "partial" (dict "Key1" val1 "Key2" val2) }}
		"dict": func(values ...any) map[string]any {
			if len(values)%2 != 0 {
				return nil
			}
			m := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					continue
				}
				m[key] = values[i+1]
			}
			return m
		},
	}
}

// deref prints nullable columns: nil pointers render as an empty string.
func deref(v any) string {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return ""
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.2f", rv.Float())
	default:
		return fmt.Sprint(rv.Interface())
	}
}

func parse(name string) (*template.Template, error) {
	mu.RLock()
	fsys, dev := source, devMode
	if !dev {
		if t, ok := tplCache[name]; ok {
			mu.RUnlock()
			return t, nil
		}
	}
	mu.RUnlock()

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	var t *template.Template
	if bytes.Contains(bytes.ToLower(content), []byte("<!doctype")) {
		// Full document provided; skip layout wrapping.
		t, err = template.New(name).Funcs(Funcs(nil)).Parse(string(content))
	} else {
		patterns := []string{"layout.html", name}
		if partials, _ := fs.Glob(fsys, "partials/*.html"); len(partials) > 0 {
			patterns = append(patterns, "partials/*.html")
		}
		t, err = template.New("layout.html").Funcs(Funcs(nil)).ParseFS(fsys, patterns...)
	}
	if err != nil {
		return nil, err
	}
	if !dev {
		mu.Lock()
		tplCache[name] = t
		mu.Unlock()
	}
	return t, nil
}

// Render executes the named page with a 200 status.
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	return RenderStatus(w, r, http.StatusOK, name, data)
}

// RenderStatus parses (or reuses) the page wrapped in layout.html and writes it with status.
// Output is buffered so a failing template never leaves a half-written page.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	if _, exists := data["Year"]; !exists {
		data["Year"] = time.Now().Year()
	}
	if _, exists := data["IsLoggedIn"]; !exists {
		id, loggedIn := auth.IdentityFromContext(r.Context())
		data["IsLoggedIn"] = loggedIn
		data["Role"] = id.Role
	}
	if _, exists := data["Notices"]; !exists {
		data["Notices"] = []Notice{}
	}
	base, err := parse(name)
	if err != nil {
		return err
	}
	// Clone so the request-bound funcs never leak into the cached template.
	t, err := base.Clone()
	if err != nil {
		return err
	}
	t.Funcs(Funcs(r))
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return err
	}
	if buf.Len() == 0 {
		return errors.New("template rendered empty output")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write(buf.Bytes())
	return err
}
