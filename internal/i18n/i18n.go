// Package i18n provides localized text lookup for scenario templates,
// generation prompts, and insight sentences. Bundles are YAML files embedded
// at build time; the rest of the system treats the returned strings as
// opaque.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// DefaultLocale is used when a request carries no locale or an unknown one.
const DefaultLocale = "en"

//go:embed locales/*.yaml
var localeFS embed.FS

var bundles = mustLoadBundles()

// mustLoadBundles parses every embedded bundle. The bundles are part of the
// binary, so a parse failure is a build defect and panics at startup.
func mustLoadBundles() map[string]*koanf.Koanf {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		panic(fmt.Sprintf("i18n: reading embedded locales: %v", err))
	}

	out := make(map[string]*koanf.Koanf, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		locale := strings.TrimSuffix(name, path.Ext(name))
		raw, err := localeFS.ReadFile(path.Join("locales", name))
		if err != nil {
			panic(fmt.Sprintf("i18n: reading bundle %s: %v", name, err))
		}
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider(raw), kyaml.Parser()); err != nil {
			panic(fmt.Sprintf("i18n: parsing bundle %s: %v", name, err))
		}
		out[locale] = k
	}
	return out
}

// Supported reports whether a bundle exists for the locale.
func Supported(locale string) bool {
	_, ok := bundles[locale]
	return ok
}

// Locales returns the supported locale codes in sorted order.
func Locales() []string {
	out := make([]string, 0, len(bundles))
	for locale := range bundles {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Normalize maps an arbitrary locale tag to a supported bundle, falling back
// to the default.
func Normalize(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	if Supported(locale) {
		return locale
	}
	return DefaultLocale
}

// T resolves a dot-notation path in the given locale's bundle, interpolating
// {param} placeholders. Missing keys fall back to the default locale, and a
// key absent everywhere returns the path itself so the gap is visible rather
// than silent.
func T(locale, keyPath string, params map[string]string) string {
	value := lookup(locale, keyPath)
	if value == "" && locale != DefaultLocale {
		value = lookup(DefaultLocale, keyPath)
	}
	if value == "" {
		return keyPath
	}
	for key, val := range params {
		value = strings.ReplaceAll(value, "{"+key+"}", val)
	}
	return value
}

func lookup(locale, keyPath string) string {
	k, ok := bundles[locale]
	if !ok {
		return ""
	}
	return k.String(keyPath)
}
