package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"tourhub/model"
	"tourhub/repository"

	"github.com/rs/zerolog/log"
)

type ContentService struct {
	contents repository.Repository[model.StaticContent]
}

const contentOrder = "section ASC, key ASC"

// All returns every content value keyed by its key.
func (s *ContentService) All(ctx context.Context) (map[string]model.ContentValue, error) {
	rows, err := s.contents.Find(ctx, repository.Query{Order: contentOrder})
	if err != nil {
		return nil, storeErr("list content", entityContent, nil, err)
	}
	return decodeAll(rows), nil
}

func (s *ContentService) BySection(ctx context.Context, section string) (map[string]model.ContentValue, error) {
	rows, err := s.contents.Find(ctx, repository.Query{
		Scopes: []repository.Scope{equals("section", section)},
		Order:  contentOrder,
	})
	if err != nil {
		return nil, storeErr("list content", entityContent, section, err)
	}
	return decodeAll(rows), nil
}

func (s *ContentService) ByKey(ctx context.Context, key string) (*model.ContentEntry, error) {
	row, err := s.contents.FindOne(ctx, repository.Query{Scopes: []repository.Scope{equals("key", key)}})
	if err != nil {
		return nil, storeErr("get content", entityContent, key, err)
	}
	return entry(*row)
}

func (s *ContentService) ListAdmin(ctx context.Context) ([]model.ContentEntry, error) {
	rows, err := s.contents.Find(ctx, repository.Query{Order: contentOrder})
	if err != nil {
		return nil, storeErr("list content", entityContent, nil, err)
	}
	out := make([]model.ContentEntry, 0, len(rows))
	for _, r := range rows {
		e, err := entry(r)
		if err != nil {
			log.Warn().Err(err).Str("key", r.Key).Msg("skipping undecodable content")
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

// Upsert creates or replaces the value stored under key.
func (s *ContentService) Upsert(ctx context.Context, key string, in model.ContentInput) (*model.ContentEntry, error) {
	key = strings.TrimSpace(key)
	ve := &ValidationError{}
	if key == "" || len(key) > 120 {
		ve.Add("key", "must be between 1 and 120 characters")
	}
	if fe := check(in); len(fe.Fields) > 0 {
		ve.Fields = append(ve.Fields, fe.Fields...)
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	existing, err := s.find(ctx, key)
	if err != nil {
		return nil, err
	}
	kind := in.Kind
	if kind == "" && existing != nil {
		kind = existing.Kind
	}
	value, err := DecodeContentValue(in.Value, kind)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, key, in.Section, value, existing)
}

// UpsertSection stores several keys of one section. All values are checked
// before anything is written.
func (s *ContentService) UpsertSection(ctx context.Context, section string, values model.SectionInput) ([]model.ContentEntry, error) {
	section = strings.TrimSpace(section)
	if section == "" {
		return nil, invalid("section", "is required")
	}
	if len(values) == 0 {
		return nil, invalid("body", "must contain at least one key")
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	type pending struct {
		key      string
		value    model.ContentValue
		existing *model.StaticContent
	}
	var (
		todo []pending
		ve   = &ValidationError{}
	)
	for _, k := range keys {
		existing, err := s.find(ctx, k)
		if err != nil {
			return nil, err
		}
		var kind model.ContentKind
		if existing != nil {
			kind = existing.Kind
		}
		v, err := DecodeContentValue(values[k], kind)
		if err != nil {
			var fe *ValidationError
			if errors.As(err, &fe) {
				ve.Add(k, fe.Fields[0].Message)
				continue
			}
			return nil, err
		}
		todo = append(todo, pending{key: k, value: v, existing: existing})
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	out := make([]model.ContentEntry, 0, len(todo))
	for _, p := range todo {
		e, err := s.save(ctx, p.key, section, p.value, p.existing)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func (s *ContentService) find(ctx context.Context, key string) (*model.StaticContent, error) {
	row, err := s.contents.FindOne(ctx, repository.Query{Scopes: []repository.Scope{equals("key", key)}})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get content", entityContent, key, err)
	}
	return row, nil
}

func (s *ContentService) save(ctx context.Context, key, section string, v model.ContentValue, existing *model.StaticContent) (*model.ContentEntry, error) {
	if existing == nil {
		row := model.StaticContent{Key: key, Section: section}
		row.Encode(v)
		if err := s.contents.Insert(ctx, &row); err != nil {
			return nil, storeErr("create content", entityContent, key, err)
		}
		return entry(row)
	}

	existing.Encode(v)
	patch := map[string]any{"type": existing.Kind, "value": existing.Value}
	if section != "" {
		patch["section"] = section
		existing.Section = section
	}
	if err := s.contents.Update(ctx, existing.ID, patch); err != nil {
		return nil, storeErr("update content", entityContent, key, err)
	}
	return entry(*existing)
}

// DecodeContentValue turns a raw JSON value into a typed content value.
// A JSON string becomes text unless kind names another text-like variant.
// Any other JSON value is stored as the json variant.
func DecodeContentValue(raw json.RawMessage, kind model.ContentKind) (model.ContentValue, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		return model.ContentValue{}, invalid("value", "must be valid JSON")
	}
	if kind != "" && !kind.IsValid() {
		return model.ContentValue{}, invalid("type", "must be one of: text html image_url json")
	}

	if raw[0] == '"' && kind != model.ContentJSON {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return model.ContentValue{}, invalid("value", "must be a string")
		}
		if kind == "" {
			kind = model.ContentText
		}
		if kind == model.ContentImageURL {
			if err := validate.Var(text, "url"); err != nil {
				return model.ContentValue{}, invalid("value", "must be a valid URL")
			}
		}
		return model.TextContent(kind, text), nil
	}

	if kind != "" && kind != model.ContentJSON {
		return model.ContentValue{}, invalid("value", "must be a string for type "+string(kind))
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return model.ContentValue{}, invalid("value", "must be valid JSON")
	}
	return model.JSONContent(compact.Bytes()), nil
}

func entry(row model.StaticContent) (*model.ContentEntry, error) {
	v, err := row.Decode()
	if err != nil {
		return nil, &DependencyError{Op: "decode content", Err: err}
	}
	return &model.ContentEntry{ID: row.ID, Key: row.Key, Section: row.Section, Kind: row.Kind, Value: v}, nil
}

func decodeAll(rows []model.StaticContent) map[string]model.ContentValue {
	out := make(map[string]model.ContentValue, len(rows))
	for _, r := range rows {
		v, err := r.Decode()
		if err != nil {
			log.Warn().Err(err).Str("key", r.Key).Msg("skipping undecodable content")
			continue
		}
		out[r.Key] = v
	}
	return out
}
