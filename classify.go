package dashdoc

import (
	"regexp"
	"strings"
)

// DefaultQualifier is the extra member prefix that marks properties besides
// the namespace itself.
const DefaultQualifier = "plugin"

// Classification is a label resolved to its display name and entry type.
type Classification struct {
	Name   string
	Anchor string
	Type   EntryType
}

// Classifier decides the display name and entry type of extracted labels.
type Classifier struct {
	namespace     string
	propertyRe    *regexp.Regexp
	constructorRe *regexp.Regexp
	lowercaseRe   *regexp.Regexp
}

// NewClassifier returns a Classifier for symbols of the given namespace.
// Labels qualified by the namespace or by any of qualifiers followed by a
// lowercase member are properties. With no qualifiers DefaultQualifier is used.
func NewClassifier(namespace string, qualifiers ...string) *Classifier {
	if len(qualifiers) == 0 {
		qualifiers = []string{DefaultQualifier}
	}

	prefixes := make([]string, 0, len(qualifiers)+1)
	prefixes = append(prefixes, regexp.QuoteMeta(namespace))
	for _, q := range qualifiers {
		prefixes = append(prefixes, regexp.QuoteMeta(q))
	}

	return &Classifier{
		namespace:     namespace,
		propertyRe:    regexp.MustCompile(`^(?:` + strings.Join(prefixes, "|") + `)\.[a-z]`),
		constructorRe: regexp.MustCompile(`^` + regexp.QuoteMeta(namespace) + `\.[A-Z]`),
		lowercaseRe:   regexp.MustCompile(`^[a-z]+$`),
	}
}

// Classify resolves label to a Classification. It never fails; labels that
// match no rule are guides with the name left as is.
//
// The rules are order dependent: the paren rule is checked before the
// lowercase rule and the "new " prefix is checked last, overriding any type
// assigned before it.
func (c *Classifier) Classify(label, anchor string) Classification {
	name := label
	typ := EntryGuide

	if c.propertyRe.MatchString(label) {
		typ = EntryProperty
	} else if c.constructorRe.MatchString(label) {
		typ = EntryConstructor
	}

	if strings.Contains(label, "(") {
		typ = EntryMethod
		if prefix, suffix, ok := strings.Cut(label, "."); ok {
			name = c.namespace + "." + prefix + "()." + suffix
		} else {
			name = c.namespace + "." + label
		}
	} else if c.lowercaseRe.MatchString(label) {
		typ = EntryConstructor
		name = c.namespace + "." + label + "()"
	}

	if strings.HasPrefix(label, "new ") || strings.HasPrefix(name, "new ") {
		typ = EntryConstructor
	}

	return Classification{Name: name, Anchor: anchor, Type: typ}
}
