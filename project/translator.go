// Package project rewrites project descriptor files (.csproj, .vbproj,
// Eclipse .project) when their sources move from one language to another.
// Only plain text substitution is performed; descriptors are never parsed.
package project

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ErrNotBijective is returned when a profile maps two identifiers onto the
// same one, or maps one identifier twice
var ErrNotBijective = errors.New("type identifier mapping is not bijective")

// Translator applies a Profile to project file text
type Translator struct {
	profile     Profile
	identifiers *regexp.Regexp
	targets     map[string]string
}

// NewTranslator validates profile. Identifiers are compared case-insensitively.
func NewTranslator(profile Profile) (*Translator, error) {
	from := map[string]bool{}
	to := map[string]bool{}
	t := &Translator{profile: profile, targets: map[string]string{}}
	patterns := make([]string, 0, len(profile.TypeIdentifiers))
	for _, pair := range profile.TypeIdentifiers {
		key := strings.ToUpper(pair.From)
		if from[key] {
			return nil, fmt.Errorf("%w: source identifier %q appears twice", ErrNotBijective, pair.From)
		}
		if to[strings.ToUpper(pair.To)] {
			return nil, fmt.Errorf("%w: target identifier %q appears twice", ErrNotBijective, pair.To)
		}
		from[key] = true
		to[strings.ToUpper(pair.To)] = true
		t.targets[key] = pair.To
		patterns = append(patterns, regexp.QuoteMeta(pair.From))
	}
	// Alternation is leftmost-first, so an identifier must be tried before
	// its prefixes
	slices.SortStableFunc(patterns, func(a, b string) int { return len(b) - len(a) })
	if len(patterns) > 0 {
		t.identifiers = regexp.MustCompile("(?i)" + strings.Join(patterns, "|"))
	}
	return t, nil
}

// TranslateTypeIdentifiers returns the identifier pairs in declared order
func (t *Translator) TranslateTypeIdentifiers() []IdentifierPair {
	return slices.Clone(t.profile.TypeIdentifiers)
}

// FileReferenceRewrites returns the literal rewrites in the order they apply
func (t *Translator) FileReferenceRewrites() []Rewrite {
	return slices.Clone(t.profile.FileRewrites)
}

// PostProcess replaces the list separator between the first start tag and the
// first end tag after it. Text without both tags in that order is returned
// unchanged.
func (t *Translator) PostProcess(text string) string {
	region := t.profile.ListRegion
	if region == nil {
		return text
	}
	start := strings.Index(text, region.StartTag)
	if start == -1 {
		return text
	}
	end := strings.Index(text[start:], region.EndTag)
	if end == -1 {
		return text
	}
	end += start
	return text[:start] + strings.ReplaceAll(text[start:end], region.From, region.To) + text[end:]
}

// Translate converts a whole project file: identifiers first, then the file
// rewrites in order, then PostProcess
func (t *Translator) Translate(text string) string {
	if t.identifiers != nil {
		text = t.identifiers.ReplaceAllStringFunc(text, func(match string) string {
			return t.targets[strings.ToUpper(match)]
		})
	}
	for _, rw := range t.profile.FileRewrites {
		text = strings.ReplaceAll(text, rw.Pattern, rw.Replacement)
	}
	return t.PostProcess(text)
}
