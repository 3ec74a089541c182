package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var embeddedLocales embed.FS

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations loads the active.*.toml message files from localesDir, or
// the embedded ones when localesDir is empty, and selects lang.
func NewTranslations(lang string, localesDir string) (*Translations, error) {
	if lang == "" {
		return nil, errors.New("language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var (
		files  []string
		source fs.FS
		err    error
	)
	if localesDir == "" {
		source = embeddedLocales
		files, err = fs.Glob(source, "locales/active.*.toml")
	} else {
		source = os.DirFS(localesDir)
		files, err = fs.Glob(source, "active.*.toml")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %q", localesDir)
	}

	for _, file := range files {
		data, err := fs.ReadFile(source, file)
		if err != nil {
			return nil, fmt.Errorf("error reading locale file %s: %w", file, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, filepath.Base(file)); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	return &Translations{
		bundle:   bundle,
		localize: i18n.NewLocalizer(bundle, lang),
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}
