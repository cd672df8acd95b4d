package core

import "testing"

func TestIsSupportedLanguage(t *testing.T) {
	tests := []struct {
		lang Language
		want bool
	}{
		{LangPunjabi, true},
		{LangHindi, true},
		{LangEnglish, true},
		{LangMultilingual, false}, // a content marker, not a language
		{"klingon", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSupportedLanguage(tt.lang); got != tt.want {
			t.Errorf("IsSupportedLanguage(%q) = %v, want %v", tt.lang, got, tt.want)
		}
	}
}

func TestTranslatedText_Get(t *testing.T) {
	full := TranslatedText{LangPunjabi: "ਪਾਠ", LangHindi: "पाठ", LangEnglish: "Lesson"}

	tests := []struct {
		name string
		text TranslatedText
		lang Language
		want string
	}{
		{name: "exact match", text: full, lang: LangHindi, want: "पाठ"},
		{name: "missing falls back to english", text: TranslatedText{LangEnglish: "Lesson"}, lang: LangPunjabi, want: "Lesson"},
		{name: "empty string falls back to english", text: TranslatedText{LangPunjabi: "", LangEnglish: "Lesson"}, lang: LangPunjabi, want: "Lesson"},
		{name: "no english falls back to any", text: TranslatedText{LangHindi: "पाठ"}, lang: LangPunjabi, want: "पाठ"},
		{name: "empty map", text: TranslatedText{}, lang: LangPunjabi, want: ""},
		{name: "nil map", text: nil, lang: LangPunjabi, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.Get(tt.lang); got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}
