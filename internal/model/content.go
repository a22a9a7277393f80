package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ContentKind tags which variant a Content holds.
type ContentKind string

const (
	ContentKindPlainText  ContentKind = "plain_text"
	ContentKindStructured ContentKind = "structured"
)

// Content is either a raw string or a structured object with named fields.
type Content struct {
	Kind   ContentKind
	Text   string
	Fields map[string]any
}

// textFieldOrder is the order in which well-known fields are read.
var textFieldOrder = []string{
	"title",
	"headline",
	"subheadline",
	"subtitle",
	"body",
	"content",
	"description",
	"sections",
	"items",
	"cta",
	"call_to_action",
	"disclaimer",
	"safety",
	"isi",
	"footnotes",
	"references",
}

// metadataFields describe the asset rather than its copy and are never extracted as text.
var metadataFields = map[string]struct{}{
	"asset_type":      {},
	"channels":        {},
	"image_count":     {},
	"has_infographic": {},
	"target_markets":  {},
	"language":        {},
}

func PlainText(s string) Content {
	return Content{Kind: ContentKindPlainText, Text: s}
}

func Structured(fields map[string]any) Content {
	return Content{Kind: ContentKindStructured, Fields: fields}
}

// ExtractText flattens the content into newline separated text. Known fields come first in a
// fixed order, then the remaining keys sorted by name, recursing into nested maps and lists.
func (c Content) ExtractText() string {
	switch c.Kind {
	case ContentKindPlainText:
		return c.Text
	case ContentKindStructured:
		var parts []string
		collectMap(c.Fields, &parts)
		return strings.Join(parts, "\n")
	default:
		return ""
	}
}

// IsEmpty reports whether the content carries no text.
func (c Content) IsEmpty() bool {
	return strings.TrimSpace(c.ExtractText()) == ""
}

// Field returns a top level field of structured content.
func (c Content) Field(key string) (any, bool) {
	if c.Kind != ContentKindStructured || c.Fields == nil {
		return nil, false
	}
	v, ok := c.Fields[key]
	return v, ok
}

func collectMap(m map[string]any, parts *[]string) {
	seen := make(map[string]struct{}, len(textFieldOrder))
	for _, key := range textFieldOrder {
		seen[key] = struct{}{}
		if v, ok := m[key]; ok {
			collectValue(v, parts)
		}
	}

	rest := make([]string, 0, len(m))
	for key := range m {
		if _, ok := seen[key]; ok {
			continue
		}
		if _, ok := metadataFields[key]; ok {
			continue
		}
		rest = append(rest, key)
	}
	sort.Strings(rest)
	for _, key := range rest {
		collectValue(m[key], parts)
	}
}

func collectValue(v any, parts *[]string) {
	switch val := v.(type) {
	case string:
		if s := strings.TrimSpace(val); s != "" {
			*parts = append(*parts, s)
		}
	case []string:
		for _, s := range val {
			collectValue(s, parts)
		}
	case []any:
		for _, item := range val {
			collectValue(item, parts)
		}
	case map[string]any:
		collectMap(val, parts)
	}
}

// MarshalJSON writes plain text as a JSON string and structured content as an object.
func (c Content) MarshalJSON() ([]byte, error) {
	if c.Kind == ContentKindStructured {
		return json.Marshal(c.Fields)
	}
	return json.Marshal(c.Text)
}

// UnmarshalJSON accepts either a JSON string or a JSON object.
func (c *Content) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "" || trimmed == "null":
		*c = PlainText("")
		return nil
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = PlainText(s)
		return nil
	case strings.HasPrefix(trimmed, "{"):
		var fields map[string]any
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		*c = Structured(fields)
		return nil
	default:
		return fmt.Errorf("content must be a string or an object")
	}
}
