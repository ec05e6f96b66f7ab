// Package i18n は UI 表示文字列の翻訳を提供します。
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Language は対応言語です。
type Language string

const (
	English Language = "en"
	Turkish Language = "tr"
)

// ErrUnsupportedLanguage は未対応の言語が指定された場合に返されます。
var ErrUnsupportedLanguage = errors.New("i18n: unsupported language")

//go:embed translations/*.yaml
var catalogFS embed.FS

var matcher = language.NewMatcher([]language.Tag{language.English, language.Turkish})

// Negotiate は BCP 47 タグから対応言語を選びます。トルコ語以外は英語になります。
func Negotiate(tag string) Language {
	t, err := language.Parse(tag)
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(t)
	if idx == 1 && conf != language.No {
		return Turkish
	}
	return English
}

// Translator はドット区切りのキーを現在の言語の文字列へ解決します。
type Translator struct {
	mu       sync.RWMutex
	catalogs map[Language]map[string]any
	current  Language
	logger   *slog.Logger
}

// NewTranslator は埋め込みカタログを読み込んで Translator を生成します。
func NewTranslator(lang Language, logger *slog.Logger) (*Translator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	catalogs := make(map[Language]map[string]any)
	for _, l := range []Language{English, Turkish} {
		b, err := catalogFS.ReadFile(fmt.Sprintf("translations/%s.yaml", l))
		if err != nil {
			return nil, fmt.Errorf("i18n: read catalog %s: %w", l, err)
		}
		var catalog map[string]any
		if err := yaml.Unmarshal(b, &catalog); err != nil {
			return nil, fmt.Errorf("i18n: parse catalog %s: %w", l, err)
		}
		catalogs[l] = catalog
	}

	t := &Translator{catalogs: catalogs, current: English, logger: logger}
	if lang != "" {
		if err := t.SetLanguage(lang); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Language は現在の言語を返します。
func (t *Translator) Language() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// SetLanguage は現在の言語を切り替えます。
func (t *Translator) SetLanguage(lang Language) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.catalogs[lang]; !ok {
		t.logger.Warn("language not supported", slog.String("lang", string(lang)))
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
	t.current = lang
	return nil
}

// T は現在の言語でキーを翻訳します。見つからない場合はキーをそのまま返します。
func (t *Translator) T(key string) string {
	return t.Lookup(t.Language(), key)
}

// Lookup は lang を指定してキーを翻訳します。未対応の言語は英語として扱います。
func (t *Translator) Lookup(lang Language, key string) string {
	t.mu.RLock()
	catalog, ok := t.catalogs[lang]
	if !ok {
		catalog = t.catalogs[English]
	}
	t.mu.RUnlock()

	node := any(catalog)
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			node = nil
			break
		}
		node = m[part]
	}

	s, ok := node.(string)
	if !ok || s == "" {
		t.logger.Warn("translation key not found", slog.String("key", key), slog.String("lang", string(lang)))
		return key
	}
	return s
}
