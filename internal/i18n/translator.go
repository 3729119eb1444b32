// Package i18n provides the translation tables for segment statuses, route
// tags, warnings, weather conditions and error messages.
package i18n

// DefaultLanguage is used when a requested language is unknown
const DefaultLanguage = "en"

var translations = map[string]map[string]string{
	"en": {
		// Segment statuses
		"optimal":     "Optimal",
		"medium":      "Fair",
		"suboptimal":  "Poor",
		"maintenance": "Under Maintenance",
		// Route tags
		"Recommended":     "Recommended",
		"Alternative":     "Alternative",
		"Fastest":         "Fastest",
		"Best Surface":    "Best Surface",
		"Shortest":        "Shortest",
		"Bumpy":           "Bumpy",
		"Road Work":       "Road Work",
		"Poor Surface":    "Poor Surface",
		"Mixed Surface":   "Mixed Surface",
		"Slightly Longer": "Slightly Longer",
		// Warnings
		"Pothole":  "Pothole",
		"Bad Road": "Bad Road",
		// Weather
		"Sunny":  "Sunny",
		"Cloudy": "Cloudy",
		"Rainy":  "Rainy",
		"Windy":  "Windy",
		"Stormy": "Stormy",
		"Clear":  "Clear",
		// Errors
		"user_id not found":    "User not found",
		"segment_id not found": "Segment not found",
		"trip_id not found":    "Trip not found",
		"report_id not found":  "Report not found",
		"invalid status":       "Invalid status",
		"invalid coordinates":  "Invalid coordinates",
		"invalid preference":   "Invalid preference",
		"unsupported language": "Unsupported language",
	},
	"zh": {
		"optimal":     "最佳",
		"medium":      "一般",
		"suboptimal":  "较差",
		"maintenance": "维护中",

		"Recommended":     "推荐",
		"Alternative":     "备选",
		"Fastest":         "最快",
		"Best Surface":    "最佳路面",
		"Shortest":        "最短",
		"Bumpy":           "颠簸",
		"Road Work":       "道路施工",
		"Poor Surface":    "路况较差",
		"Mixed Surface":   "混合路面",
		"Slightly Longer": "稍长",

		"Pothole":  "坑洼",
		"Bad Road": "路况差",

		"Sunny":  "晴天",
		"Cloudy": "多云",
		"Rainy":  "雨天",
		"Windy":  "大风",
		"Stormy": "暴风雨",
		"Clear":  "晴朗",

		"user_id not found":    "用户未找到",
		"segment_id not found": "路段未找到",
		"trip_id not found":    "行程未找到",
		"report_id not found":  "报告未找到",
		"invalid status":       "无效状态",
		"invalid coordinates":  "无效坐标",
		"invalid preference":   "无效偏好",
		"unsupported language": "不支持的语言",
	},
	"it": {
		"optimal":     "Ottimale",
		"medium":      "Discreto",
		"suboptimal":  "Scarso",
		"maintenance": "In Manutenzione",

		"Recommended":     "Consigliato",
		"Alternative":     "Alternativa",
		"Fastest":         "Più Veloce",
		"Best Surface":    "Migliore Superficie",
		"Shortest":        "Più Breve",
		"Bumpy":           "Sconnesso",
		"Road Work":       "Lavori in Corso",
		"Poor Surface":    "Superficie Scarsa",
		"Mixed Surface":   "Superficie Mista",
		"Slightly Longer": "Leggermente Più Lungo",

		"Pothole":  "Buca",
		"Bad Road": "Strada Dissestata",

		"Sunny":  "Soleggiato",
		"Cloudy": "Nuvoloso",
		"Rainy":  "Piovoso",
		"Windy":  "Ventoso",
		"Stormy": "Tempestoso",
		"Clear":  "Sereno",

		"user_id not found":    "Utente non trovato",
		"segment_id not found": "Segmento non trovato",
		"trip_id not found":    "Viaggio non trovato",
		"report_id not found":  "Segnalazione non trovata",
		"invalid status":       "Stato non valido",
		"invalid coordinates":  "Coordinate non valide",
		"invalid preference":   "Preferenza non valida",
		"unsupported language": "Lingua non supportata",
	},
}

// Translate resolves a key to its label in the given language.
// Unknown languages fall back to English; unknown keys come back unchanged.
func Translate(key, lang string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[DefaultLanguage]
	}
	if label, ok := table[key]; ok {
		return label
	}
	return key
}

// ValidLanguage reports whether code has a translation table
func ValidLanguage(code string) bool {
	_, ok := translations[code]
	return ok
}

// TranslateList translates every key in order
func TranslateList(keys []string, lang string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = Translate(k, lang)
	}
	return out
}

// Translations returns the full table for a language (English when unknown)
func Translations(lang string) (string, map[string]string) {
	if _, ok := translations[lang]; !ok {
		lang = DefaultLanguage
	}
	return lang, translations[lang]
}

// Language describes an available UI language
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

// AvailableLanguages lists the languages with translation tables
func AvailableLanguages() []Language {
	return []Language{
		{Code: "en", Name: "English", NativeName: "English"},
		{Code: "zh", Name: "Chinese", NativeName: "中文"},
		{Code: "it", Name: "Italian", NativeName: "Italiano"},
	}
}

// Codes returns the language codes in table order
func Codes() []string {
	return []string{"en", "zh", "it"}
}
