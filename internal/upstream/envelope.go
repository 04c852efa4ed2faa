package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
)

// The upstream API wraps payloads in a small closed set of envelope
// shapes. Each variant gets an explicit decode step validated at this
// boundary instead of duck-typing the response downstream.

// ErrEnvelope signals a response that does not match the expected
// envelope variant.
var ErrEnvelope = errors.New("unexpected response envelope")

// Meta carries pagination bookkeeping for paginated envelopes.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Links carries pagination navigation URLs.
type Links struct {
	First *string `json:"first"`
	Last  *string `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// List is the bare {"data": [...]} envelope.
type List[T any] struct {
	Data []T `json:"data"`
}

// Paginated is the {"data", "links", "meta"} envelope.
type Paginated[T any] struct {
	Data  []T   `json:"data"`
	Links Links `json:"links"`
	Meta  Meta  `json:"meta"`
}

// Single is the {"data": {...}} envelope around one object.
type Single[T any] struct {
	Data T `json:"data"`
}

// DecodeList unwraps a bare list envelope, requiring the data key.
func DecodeList[T any](raw json.RawMessage) (List[T], error) {
	var probe struct {
		Data *[]T `json:"data"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return List[T]{}, fmt.Errorf("%w: %v", ErrEnvelope, err)
	}
	if probe.Data == nil {
		return List[T]{}, fmt.Errorf("%w: missing data", ErrEnvelope)
	}
	return List[T]{Data: *probe.Data}, nil
}

// DecodePaginated unwraps a paginated envelope, requiring both the
// data and meta keys.
func DecodePaginated[T any](raw json.RawMessage) (Paginated[T], error) {
	var probe struct {
		Data  *[]T  `json:"data"`
		Links Links `json:"links"`
		Meta  *Meta `json:"meta"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Paginated[T]{}, fmt.Errorf("%w: %v", ErrEnvelope, err)
	}
	if probe.Data == nil {
		return Paginated[T]{}, fmt.Errorf("%w: missing data", ErrEnvelope)
	}
	if probe.Meta == nil {
		return Paginated[T]{}, fmt.Errorf("%w: missing meta", ErrEnvelope)
	}
	return Paginated[T]{Data: *probe.Data, Links: probe.Links, Meta: *probe.Meta}, nil
}

// DecodeSingle unwraps a single-object envelope.
func DecodeSingle[T any](raw json.RawMessage) (T, error) {
	var probe struct {
		Data *T `json:"data"`
	}
	var zero T
	if err := json.Unmarshal(raw, &probe); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrEnvelope, err)
	}
	if probe.Data == nil {
		return zero, fmt.Errorf("%w: missing data", ErrEnvelope)
	}
	return *probe.Data, nil
}
