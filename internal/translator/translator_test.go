package translator_test

import (
	"testing"
	"testing/fstest"

	"github.com/monocle-dev/huddle/internal/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_LoadsEmbeddedCatalogs(t *testing.T) {
	tr, err := translator.New(translator.Config{Language: translator.LanguageKo}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, translator.LanguageKo, tr.Language())
	assert.Equal(t, "완료", tr.T("statusCompleted", nil))
	assert.Equal(t, "🎉 방 [a1]에 참가했습니다.", tr.T("joinedRoom", map[string]any{"Room": "a1"}))
}

func TestNew_UnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	tr, err := translator.New(translator.Config{Language: "fr"}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, translator.LanguageEn, tr.Language())
	assert.Equal(t, "completed", tr.T("statusCompleted", nil))
}

func TestT_TemplateData(t *testing.T) {
	tr, err := translator.New(translator.Config{Language: translator.LanguageEn}, zap.NewNop())
	require.NoError(t, err)

	got := tr.T("projectNotFound", map[string]any{"Project": "capstone"})
	assert.Equal(t, "Project 'capstone' was not found.", got)
}

func TestT_MissingMessageReturnsID(t *testing.T) {
	files := fstest.MapFS{
		"en.toml": &fstest.MapFile{Data: []byte(`hello = "Hello english"`)},
	}
	tr, err := translator.New(translator.Config{Files: files, Language: translator.LanguageEn}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "Hello english", tr.T("hello", nil))
	assert.Equal(t, "unknown_key", tr.T("unknown_key", nil))
}

func TestCatalogsAreComplete(t *testing.T) {
	en, err := translator.New(translator.Config{Language: translator.LanguageEn}, zap.NewNop())
	require.NoError(t, err)
	ko, err := translator.New(translator.Config{Language: translator.LanguageKo}, zap.NewNop())
	require.NoError(t, err)

	for _, id := range []string{"missingFields", "badDate", "badTime", "emptyName", "helpText", "statusCompleted", "storageFailure", "conflict"} {
		assert.NotEqual(t, id, en.T(id, nil), id)
		assert.NotEqual(t, en.T(id, nil), ko.T(id, nil), id)
	}
}
