package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Optimal", Translate("optimal", "en"))
	assert.Equal(t, "最佳", Translate("optimal", "zh"))
	assert.Equal(t, "Ottimale", Translate("optimal", "it"))
}

func TestTranslateUnknownLanguageFallsBack(t *testing.T) {
	assert.Equal(t, Translate("optimal", "en"), Translate("optimal", "de"))
	assert.Equal(t, Translate("optimal", "en"), Translate("optimal", ""))
}

func TestTranslateUnknownKeyPassesThrough(t *testing.T) {
	assert.Equal(t, "no such key", Translate("no such key", "en"))
	assert.Equal(t, "no such key", Translate("no such key", "zh"))
}

func TestTranslateList(t *testing.T) {
	got := TranslateList([]string{"optimal", "maintenance"}, "en")
	require.Len(t, got, 2)
	assert.Equal(t, "Optimal", got[0])
	assert.NotEqual(t, "maintenance", got[1])

	assert.Empty(t, TranslateList(nil, "en"))
}

func TestTranslations(t *testing.T) {
	lang, table := Translations("zh")
	assert.Equal(t, "zh", lang)
	assert.NotEmpty(t, table)

	lang, table = Translations("xx")
	assert.Equal(t, DefaultLanguage, lang)
	assert.NotEmpty(t, table)
}

func TestValidLanguage(t *testing.T) {
	for _, code := range Codes() {
		assert.True(t, ValidLanguage(code), code)
	}
	assert.False(t, ValidLanguage("de"))
	assert.False(t, ValidLanguage(""))
}

func TestEveryLanguageCoversStatuses(t *testing.T) {
	keys := []string{"optimal", "medium", "suboptimal", "maintenance"}
	for _, code := range Codes() {
		_, table := Translations(code)
		for _, key := range keys {
			assert.Contains(t, table, key, "%s missing %s", code, key)
		}
	}
}
