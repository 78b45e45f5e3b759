// SPDX-License-Identifier: MIT

package report

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLanguage is used when no language is configured.
var DefaultLanguage = language.Spanish

// supported lists the languages with a locale file, in matcher priority order.
var supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(supported)

//go:embed locales/*.toml
var localeFS embed.FS

// Message keys. Each locale file holds them as section.key.
const (
	keyReportTitle       = "report.title"
	keyReportPlaceholder = "report.placeholder"

	keyHeaderSubject = "header.subject"
	keyHeaderProgram = "header.program"
	keyHeaderAuthor  = "header.author"
	keyHeaderCampus  = "header.campus"
	keyHeaderShift   = "header.shift"
	keyHeaderDate    = "header.date"

	keyExerciseTitle  = "exercise.title"
	keyExerciseMatrix = "exercise.matrix"
	keyExerciseSteps  = "exercise.steps"
	keyExerciseStage  = "exercise.stage"
	keyExerciseResult = "exercise.result"

	keyOpAddition       = "operation.addition"
	keyOpSubtraction    = "operation.subtraction"
	keyOpMultiplication = "operation.multiplication"
	keyOpChain          = "operation.chain"
)

var loadCatalog = sync.OnceValues(buildCatalog)

// buildCatalog decodes every embedded locales/<tag>.toml into one catalog.
func buildCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("report: read locales: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		tag, err := language.Parse(strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			return nil, fmt.Errorf("report: locale %s: %w", name, err)
		}
		var sections map[string]map[string]string
		if _, err := toml.DecodeFS(localeFS, path.Join("locales", name), &sections); err != nil {
			return nil, fmt.Errorf("report: locale %s: %w", name, err)
		}
		for section, kv := range sections {
			for k, msg := range kv {
				if err := b.SetString(tag, section+"."+k, msg); err != nil {
					return nil, fmt.Errorf("report: locale %s: %s.%s: %w", name, section, k, err)
				}
			}
		}
	}

	return b, nil
}

// Languages returns the supported language tags, sorted by BCP 47 string.
func Languages() []language.Tag {
	out := append([]language.Tag(nil), supported...)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// ParseLanguage resolves a BCP 47 string ("es", "en-US", "es-CO") to the
// closest supported language. An empty string yields DefaultLanguage.
func ParseLanguage(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLanguage, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("report: language %q: %w", s, ErrUnsupportedLanguage)
	}

	return matchLanguage(tag)
}

func matchLanguage(tag language.Tag) (language.Tag, error) {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("report: language %s: %w", tag, ErrUnsupportedLanguage)
	}

	return supported[idx], nil
}

func newPrinter(tag language.Tag) (*message.Printer, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	return message.NewPrinter(tag, message.Catalog(cat)), nil
}
