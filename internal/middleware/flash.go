package middleware

import (
	"net/http"
	"net/url"

	"github.com/diewo77/go-relief/i18n"
	"github.com/diewo77/go-relief/view"
)

const flashCookie = "flash"

// Flash sets a translated one-shot notice shown after the next redirect.
// code is looked up in the notice catalog for the request language.
func Flash(w http.ResponseWriter, r *http.Request, category, code string) {
	msg := i18n.T(i18n.LangFrom(r.Context()), code)
	v := url.Values{"c": {category}, "m": {msg}}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: v.Encode(), Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// PopFlashes returns the pending notice, if any, and clears it.
func PopFlashes(w http.ResponseWriter, r *http.Request) []view.Notice {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	v, err := url.ParseQuery(c.Value)
	if err != nil || v.Get("m") == "" {
		return nil
	}
	category := v.Get("c")
	if category == "" {
		category = view.NoticeInfo
	}
	return []view.Notice{{Category: category, Message: v.Get("m")}}
}
