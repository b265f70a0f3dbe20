package otquery

import (
	"strings"
	"sync"

	"github.com/npillmayer/otbase/ot"
	"golang.org/x/text/language"
)

// ScriptTag returns the OpenType script tag for an ISO 15924 script.
// Scripts which are not specific (unknown, common, inherited) map to DFLT.
//
// OpenType script tags are mostly the ISO 15924 code with its first letter
// in lower case. The exceptions are from the OpenType script tag registry.
func ScriptTag(script language.Script) ot.Tag {
	code := script.String()
	switch code {
	case "", "Zzzz", "Zyyy", "Zinh":
		return ot.DFLT
	case "Zmth":
		return ot.T("math")
	case "Hira", "Hrkt": // Katakana and Hiragana both map to 'kana'
		return ot.T("kana")
	case "Hani", "Hans", "Hant", "Jpan": // x/text names writing systems, fonts name Han
		return ot.T("hani")
	case "Kore":
		return ot.T("hang")
	case "Laoo": // spaces at the end are preserved, unlike ISO 15924
		return ot.T("lao ")
	case "Yiii":
		return ot.T("yi  ")
	case "Nkoo":
		return ot.T("nko ")
	case "Vaii":
		return ot.T("vai ")
	}
	return ot.Tag(uint32(ot.T(code)) | 0x20000000)
}

type langSysEntry struct {
	language string
	tag      ot.Tag
}

var (
	langSysIndexOnce sync.Once
	langSysIndex     map[string][]ot.Tag
)

func initLangSysIndex() {
	langSysIndex = make(map[string][]ot.Tag, len(langSysRegistry))
	for _, entry := range langSysRegistry {
		langSysIndex[entry.language] = append(langSysIndex[entry.language], entry.tag)
	}
}

// langSysTagsForPrimary returns the registered tags for a primary language
// subtag in order of preference, or nil.
func langSysTagsForPrimary(primary string) []ot.Tag {
	langSysIndexOnce.Do(initLangSysIndex)
	tags := langSysIndex[primary]
	if len(tags) == 0 {
		return nil
	}
	out := make([]ot.Tag, len(tags))
	copy(out, tags)
	return out
}

// LangSysTags returns the OpenType language system tags for a language, most
// preferred first. Languages missing from the OpenType registry map to their
// upper-cased ISO 639-3 code. The undetermined language, as well as a language
// x/text could only guess, has no tags.
func LangSysTags(lang language.Tag) []ot.Tag {
	if lang.IsRoot() {
		return nil
	}
	base, conf := lang.Base()
	if conf < language.High {
		return nil
	}
	primary := base.String()
	if primary == "zh" {
		if t, ok := chineseLangSys(lang); ok {
			return []ot.Tag{t}
		}
	}
	if tags := langSysTagsForPrimary(primary); len(tags) != 0 {
		return tags
	}
	iso3 := base.ISO3()
	if len(iso3) != 3 {
		return nil
	}
	return []ot.Tag{ot.T(strings.ToUpper(iso3))}
}

// LangSysTag returns the preferred OpenType language system tag for a
// language. For the undetermined language, 0 is returned.
func LangSysTag(lang language.Tag) ot.Tag {
	if tags := LangSysTags(lang); len(tags) != 0 {
		return tags[0]
	}
	return 0
}

// chineseLangSys selects between the Chinese language systems by explicit
// script or region. Simplified Chinese is left to the registry.
func chineseLangSys(lang language.Tag) (ot.Tag, bool) {
	if region, conf := lang.Region(); conf == language.Exact {
		switch region.String() {
		case "HK":
			return ot.T("ZHH"), true
		case "MO":
			return ot.T("ZHTM"), true
		case "TW":
			return ot.T("ZHT"), true
		}
	}
	if script, conf := lang.Script(); conf == language.Exact && script.String() == "Hant" {
		return ot.T("ZHT"), true
	}
	return 0, false
}

// ForLanguage returns the OpenType script and language system tags for a
// language tag. The script is derived by x/text if lang does not name one.
// The undetermined language maps to DFLT and langsys 0.
func ForLanguage(lang language.Tag) (script ot.Tag, langsys ot.Tag) {
	if lang.IsRoot() {
		return ot.DFLT, 0
	}
	s, conf := lang.Script()
	if conf == language.No {
		return ot.DFLT, LangSysTag(lang)
	}
	return ScriptTag(s), LangSysTag(lang)
}
