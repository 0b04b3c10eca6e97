package i18n

import (
	"context"
	"testing"
)

func TestDetectLanguage(t *testing.T) {
	if DetectLanguage("fr-FR,fr;q=0.9") != "fr" {
		t.Fatalf("expected fr")
	}
	if DetectLanguage("FR-ca") != "fr" {
		t.Fatalf("expected fr for FR-ca")
	}
	if DetectLanguage("de-DE,en;q=0.8") != "en" {
		t.Fatalf("expected en from second tag")
	}
	if DetectLanguage("de-DE") != "en" {
		t.Fatalf("expected en fallback")
	}
	if DetectLanguage("") != "en" {
		t.Fatalf("expected default en")
	}
}

func TestTranslations(t *testing.T) {
	if T("en", "required") != "Required" {
		t.Fatalf("expected Required")
	}
	if T("fr", "required") != "Requis" {
		t.Fatalf("expected Requis")
	}
	// unknown code -> fallback to code
	if T("en", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to code")
	}
	// unknown language -> fallback to en translation if exists
	if T("es", "invalid_credentials") != "Invalid username or password" {
		t.Fatalf("expected en fallback for es lang")
	}
}

func TestCatalogsHaveSameCodes(t *testing.T) {
	for code := range catalog[DefaultLang] {
		if _, ok := catalog["fr"][code]; !ok {
			t.Errorf("fr catalog missing %q", code)
		}
	}
}

func TestLangContext(t *testing.T) {
	if LangFrom(context.Background()) != DefaultLang {
		t.Fatalf("expected default lang")
	}
	if LangFrom(WithLang(context.Background(), "fr")) != "fr" {
		t.Fatalf("expected fr from context")
	}
}
