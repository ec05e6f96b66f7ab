package i18n

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func newTestTranslator(t *testing.T, lang Language) *Translator {
	t.Helper()
	tr, err := NewTranslator(lang, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewTranslator returned error: %v", err)
	}
	return tr
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t, English)
	if got := tr.T("validation.required"); got != "This field is required" {
		t.Fatalf("unexpected translation: %s", got)
	}
	if got := tr.T("loading"); got != "Loading..." {
		t.Fatalf("unexpected translation: %s", got)
	}
	for _, key := range []string{"validation.missing", "validation", "loading.deeper", ""} {
		if got := tr.T(key); got != key {
			t.Errorf("expected fallback to key %q, got %q", key, got)
		}
	}
}

func TestTranslator_SetLanguage(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t, English)
	if err := tr.SetLanguage(Turkish); err != nil {
		t.Fatalf("SetLanguage returned error: %v", err)
	}
	if got := tr.T("departments.tech"); got != "Teknoloji" {
		t.Fatalf("unexpected translation: %s", got)
	}

	if err := tr.SetLanguage("de"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if tr.Language() != Turkish {
		t.Fatalf("language changed after failed switch")
	}
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	cases := map[string]Language{
		"tr":    Turkish,
		"tr-TR": Turkish,
		"en-US": English,
		"de":    English,
		"":      English,
		"???":   English,
	}
	for tag, want := range cases {
		if got := Negotiate(tag); got != want {
			t.Errorf("Negotiate(%q) = %s, want %s", tag, got, want)
		}
	}
}

func TestTranslator_Lookup(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t, English)
	if got := tr.Lookup(Turkish, "validation.invalidPhone"); got != "Geçersiz telefon numarası" {
		t.Fatalf("unexpected translation: %s", got)
	}
	if got := tr.Lookup("xx", "positions.senior"); got != "Senior" {
		t.Fatalf("expected english fallback, got %s", got)
	}
	if tr.Language() != English {
		t.Fatalf("Lookup must not change the current language")
	}
}
