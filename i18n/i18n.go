// Package i18n holds the notice catalog shown to relief desk staff.
package i18n

import (
	"context"
	"strings"
)

// DefaultLang is used when no supported language can be detected.
const DefaultLang = "en"

type ctxKey struct{}

var catalog = map[string]map[string]string{
	"en": {
		"required":            "Required",
		"register_success":    "User registered successfully!",
		"register_failed":     "Registration failed, please try again.",
		"username_taken":      "Username already exists.",
		"credentials_missing": "Username and password are required.",
		"login_success":       "Login successful!",
		"login_failed":        "Login is unavailable right now, please try again.",
		"invalid_credentials": "Invalid username or password",
		"logout_success":      "Logged out successfully",
		"load_failed":         "Could not load records.",
		"db_unavailable":      "The database is unavailable.",
		"donation_added":      "Donation added successfully!",
		"donation_failed":     "Could not record the donation.",
		"invalid_amount":      "Amount must be a number.",
		"invalid_quantity":    "Quantity must be a whole number.",
		"invalid_center":      "Relief center must be a valid identifier.",
	},
	"fr": {
		"required":            "Requis",
		"register_success":    "Utilisateur enregistré avec succès !",
		"register_failed":     "L'inscription a échoué, veuillez réessayer.",
		"username_taken":      "Ce nom d'utilisateur existe déjà.",
		"credentials_missing": "Nom d'utilisateur et mot de passe requis.",
		"login_success":       "Connexion réussie !",
		"login_failed":        "Connexion indisponible, veuillez réessayer.",
		"invalid_credentials": "Nom d'utilisateur ou mot de passe invalide",
		"logout_success":      "Déconnexion réussie",
		"load_failed":         "Impossible de charger les données.",
		"db_unavailable":      "La base de données est indisponible.",
		"donation_added":      "Don ajouté avec succès !",
		"donation_failed":     "Impossible d'enregistrer le don.",
		"invalid_amount":      "Le montant doit être un nombre.",
		"invalid_quantity":    "La quantité doit être un nombre entier.",
		"invalid_center":      "Le centre doit être un identifiant valide.",
	},
}

// Supported reports whether lang has a catalog.
func Supported(lang string) bool {
	_, ok := catalog[lang]
	return ok
}

// DetectLanguage picks the first supported primary tag of an Accept-Language header.
func DetectLanguage(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		primary := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if Supported(primary) {
			return primary
		}
	}
	return DefaultLang
}

// T translates code, falling back to the default language and then to the code itself.
func T(lang, code string) string {
	if msgs, ok := catalog[lang]; ok {
		if s, ok := msgs[code]; ok {
			return s
		}
	}
	if s, ok := catalog[DefaultLang][code]; ok {
		return s
	}
	return code
}

// WithLang stores the request language in context.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

// LangFrom returns the language stored in ctx or DefaultLang.
func LangFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return v
	}
	return DefaultLang
}
