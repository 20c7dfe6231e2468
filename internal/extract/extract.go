// Package extract derives structured business fields from unstructured
// OCR text using ordered, per-document-type pattern tables.
package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// maxDescriptionLen bounds the description excerpt taken from raw text.
const maxDescriptionLen = 500

type compiledRule struct {
	field string
	re    *regexp.Regexp // nil for the description rule
}

// RuleSet is an ordered, compiled table of extraction rules for one
// logical document type. Rule sets are immutable after construction and
// safe for concurrent use.
type RuleSet struct {
	documentType string
	rules        []compiledRule
}

// NewRuleSet compiles a rule table. It panics on an invalid pattern or a
// pattern without exactly one capturing group, since rule tables are
// package-level declarations.
func NewRuleSet(documentType string, rules []Rule) *RuleSet {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		if r.Expr == "" {
			compiled = append(compiled, compiledRule{field: r.Field})
			continue
		}
		re := regexp.MustCompile(r.Expr)
		if re.NumSubexp() != 1 {
			panic(fmt.Sprintf("extract: rule %q must have exactly one capturing group", r.Field))
		}
		compiled = append(compiled, compiledRule{field: r.Field, re: re})
	}
	return &RuleSet{documentType: documentType, rules: compiled}
}

// DocumentType returns the label used when synthesizing a response wrapper.
func (rs *RuleSet) DocumentType() string {
	return rs.documentType
}

// Extract applies the rule set to raw recognized text. Per field, the
// first rule whose capturing group matches supplies the value, trimmed of
// surrounding whitespace; fields with no match are omitted entirely so a
// later merge never clobbers an upstream value with a blank.
func Extract(rawText string, rules *RuleSet) map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(rawText) == "" {
		return fields
	}

	for _, rule := range rules.rules {
		if _, done := fields[rule.field]; done {
			continue
		}
		if rule.re == nil {
			fields[rule.field] = excerpt(rawText)
			continue
		}
		match := rule.re.FindStringSubmatch(rawText)
		if len(match) < 2 {
			continue
		}
		value := strings.TrimSpace(match[1])
		if value != "" {
			fields[rule.field] = value
		}
	}
	return fields
}

// excerpt returns the first maxDescriptionLen characters of the text,
// counting runes so a multi-byte character is never split.
func excerpt(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= maxDescriptionLen {
		return text
	}
	return string(runes[:maxDescriptionLen])
}

func normalizeEndpoint(endpoint string) string {
	return strings.ToLower(strings.TrimSpace(endpoint))
}
