package model

import (
	"encoding/json"
	"fmt"
)

type ContentKind string

const (
	ContentText     ContentKind = "text"
	ContentHTML     ContentKind = "html"
	ContentImageURL ContentKind = "image_url"
	ContentJSON     ContentKind = "json"
)

func (k ContentKind) IsValid() bool {
	switch k {
	case ContentText, ContentHTML, ContentImageURL, ContentJSON:
		return true
	}
	return false
}

// StaticContent is one editable piece of site copy addressed by key.
// Value holds the text for text, html and image_url kinds, and a JSON
// document for the json kind.
type StaticContent struct {
	DTO
	Key     string      `gorm:"size:120;uniqueIndex;not null" json:"key"`
	Section string      `gorm:"size:120;index" json:"section"`
	Kind    ContentKind `gorm:"column:type;size:20;not null" json:"type"`
	Value   string      `gorm:"type:text" json:"-"`
}

// ContentValue is the decoded form of a StaticContent value.
// Exactly one of Text or Data is meaningful, depending on Kind.
type ContentValue struct {
	Kind ContentKind
	Text string
	Data json.RawMessage
}

func (v ContentValue) MarshalJSON() ([]byte, error) {
	if v.Kind == ContentJSON {
		if len(v.Data) == 0 {
			return []byte("null"), nil
		}
		return v.Data, nil
	}
	return json.Marshal(v.Text)
}

func TextContent(kind ContentKind, text string) ContentValue {
	return ContentValue{Kind: kind, Text: text}
}

func JSONContent(data json.RawMessage) ContentValue {
	return ContentValue{Kind: ContentJSON, Data: data}
}

// Decode turns the stored value into its typed variant.
func (c StaticContent) Decode() (ContentValue, error) {
	switch c.Kind {
	case ContentText, ContentHTML, ContentImageURL:
		return TextContent(c.Kind, c.Value), nil
	case ContentJSON:
		raw := json.RawMessage(c.Value)
		if !json.Valid(raw) {
			return ContentValue{}, fmt.Errorf("content %q: stored value is not valid json", c.Key)
		}
		return JSONContent(raw), nil
	}
	return ContentValue{}, fmt.Errorf("content %q: unknown kind %q", c.Key, c.Kind)
}

// Encode stores a typed value on the row.
func (c *StaticContent) Encode(v ContentValue) {
	c.Kind = v.Kind
	if v.Kind == ContentJSON {
		c.Value = string(v.Data)
		return
	}
	c.Value = v.Text
}

// ContentEntry is how a row is returned to admin clients.
type ContentEntry struct {
	ID      uint         `json:"id"`
	Key     string       `json:"key"`
	Section string       `json:"section"`
	Kind    ContentKind  `json:"type"`
	Value   ContentValue `json:"value"`
}

// ContentInput is the raw admin payload. Value may be any JSON value: a JSON
// string becomes text (or the requested text-like kind), anything else is
// stored as the json kind.
type ContentInput struct {
	Value   json.RawMessage `json:"value" validate:"required"`
	Section string          `json:"section" validate:"max=120"`
	Kind    ContentKind     `json:"type" validate:"omitempty,oneof=text html image_url json"`
}

type SectionInput map[string]json.RawMessage
