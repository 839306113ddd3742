package refdata

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// TemplateSet maps symbolic message keys to format strings with named
// {placeholder} tokens for one language.
type TemplateSet map[string]string

// Catalog holds the per-language template sets. The default language's set is
// the reference both for fallback and for placeholder validation.
type Catalog struct {
	DefaultLanguage string
	Sets            map[string]TemplateSet
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// NewCatalog validates the template sets and returns a catalog. Every language
// must define every key of the default language with the same placeholders, so
// missing or renamed keys surface at load time rather than at render time.
func NewCatalog(defaultLanguage string, sets map[string]TemplateSet) (*Catalog, error) {
	ref, ok := sets[defaultLanguage]
	if !ok {
		return nil, fmt.Errorf("default language %q has no template set", defaultLanguage)
	}
	for lang, set := range sets {
		for key, refTmpl := range ref {
			tmpl, ok := set[key]
			if !ok {
				return nil, fmt.Errorf("language %q is missing template key %q", lang, key)
			}
			want := placeholders(refTmpl)
			got := placeholders(tmpl)
			if strings.Join(want, ",") != strings.Join(got, ",") {
				return nil, fmt.Errorf("language %q template %q placeholders %v do not match default %v",
					lang, key, got, want)
			}
		}
	}
	return &Catalog{DefaultLanguage: defaultLanguage, Sets: sets}, nil
}

func placeholders(tmpl string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	sort.Strings(out)
	return out
}

// Languages lists the supported languages.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.Sets))
	for lang := range c.Sets {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Supported reports whether a language has its own template set.
func (c *Catalog) Supported(language string) bool {
	_, ok := c.Sets[language]
	return ok
}

// Resolve returns the template set for a language, falling back to the default
// language when the requested one is unsupported.
func (c *Catalog) Resolve(language string) TemplateSet {
	if set, ok := c.Sets[language]; ok {
		return set
	}
	return c.Sets[c.DefaultLanguage]
}

// Render substitutes context values into the named template. An unknown key
// degrades to the key itself rather than failing the whole composition.
func (set TemplateSet) Render(key string, ctx map[string]string) string {
	tmpl, ok := set[key]
	if !ok {
		return key
	}
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(tok string) string {
		name := tok[1 : len(tok)-1]
		if v, ok := ctx[name]; ok {
			return v
		}
		return tok
	})
}
