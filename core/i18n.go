package core

// Language is a supported content language code.
type Language string

const (
	LangPunjabi Language = "punjabi"
	LangHindi   Language = "hindi"
	LangEnglish Language = "english"

	// LangMultilingual marks content carrying all supported translations.
	LangMultilingual Language = "multilingual"

	DefaultLanguage = LangPunjabi
)

var SupportedLanguages = []Language{LangPunjabi, LangHindi, LangEnglish}

func IsSupportedLanguage(lang Language) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// TranslatedText holds one text per supported language code.
type TranslatedText map[Language]string

// Get returns the text for lang, falling back to english then to any available translation.
func (t TranslatedText) Get(lang Language) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	if s, ok := t[LangEnglish]; ok && s != "" {
		return s
	}
	for _, s := range t {
		if s != "" {
			return s
		}
	}
	return ""
}
