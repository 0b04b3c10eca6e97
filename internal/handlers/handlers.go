// Package handlers serves the relief desk pages and JSON endpoints.
package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/go-relief/i18n"
	"github.com/diewo77/go-relief/internal/middleware"
	"github.com/diewo77/go-relief/internal/store"
	"github.com/diewo77/go-relief/view"
)

// notice builds a translated notice for the current request.
func notice(r *http.Request, category, code string) view.Notice {
	return view.Notice{Category: category, Message: i18n.T(i18n.LangFrom(r.Context()), code)}
}

// failureCode picks the notice for a failed database scope.
func failureCode(err error) string {
	if errors.Is(err, store.ErrUnavailable) {
		return "db_unavailable"
	}
	return "load_failed"
}

// render writes a page, prepending notices carried over from a redirect.
func render(w http.ResponseWriter, r *http.Request, page string, data map[string]any, notices ...view.Notice) {
	if data == nil {
		data = map[string]any{}
	}
	all := append(middleware.PopFlashes(w, r), notices...)
	if all == nil {
		all = []view.Notice{}
	}
	data["Notices"] = all
	if err := view.Render(w, r, page, data); err != nil {
		middleware.Log(r.Context()).WithError(err).WithField("template", page).Error("render failed")
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
