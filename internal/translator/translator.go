package translator

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	LanguageEn = "en"
	LanguageKo = "ko"
)

//go:embed translation/*.toml
var catalogs embed.FS

const catalogDir = "translation"

type Config struct {
	// Files overrides the embedded catalogs, mainly for tests.
	Files              fs.FS
	Language           string
	SupportedLanguages []string
}

// Translator renders catalog messages in one configured language with an
// English fallback.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	language  string
	logger    *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files := cfg.Files
	dir := "."
	if files == nil {
		files = catalogs
		dir = catalogDir
	}

	entries, err := fs.ReadDir(files, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list translation catalogs: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".toml" {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(files, path.Join(dir, entry.Name())); err != nil {
			logger.Warn("failed to load translation file", zap.String("file", entry.Name()), zap.Error(err))
		}
	}

	lang := cfg.Language
	if lang == "" || !supported(lang, cfg.SupportedLanguages) {
		lang = LanguageEn
	}

	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, lang, LanguageEn),
		language:  lang,
		logger:    logger,
	}, nil
}

func (t *Translator) Language() string {
	return t.language
}

// T localizes msgID. A missing message logs a warning and returns msgID.
func (t *Translator) T(msgID string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    msgID,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("translation not found", zap.String("lang", t.language), zap.String("message_id", msgID), zap.Error(err))
		return msgID
	}
	return msg
}

func supported(lang string, languages []string) bool {
	if len(languages) == 0 {
		return lang == LanguageEn || lang == LanguageKo
	}
	for _, l := range languages {
		if l == lang {
			return true
		}
	}
	return false
}
