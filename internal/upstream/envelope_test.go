package upstream

import (
	"encoding/json"
	"errors"
	"testing"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestDecodePaginated(t *testing.T) {
	raw := json.RawMessage(`{
		"data": [{"id": 1, "name": "a"}, {"id": 2, "name": "b"}],
		"links": {"next": "https://api.example/user/lectures?page=2"},
		"meta": {"current_page": 1, "last_page": 4, "per_page": 2, "total": 8}
	}`)

	page, err := DecodePaginated[item](raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Data) != 2 || page.Data[1].Name != "b" {
		t.Fatalf("unexpected data: %+v", page.Data)
	}
	if page.Meta.LastPage != 4 || page.Meta.Total != 8 {
		t.Fatalf("unexpected meta: %+v", page.Meta)
	}
	if page.Links.Next == nil {
		t.Fatalf("next link lost")
	}
}

func TestDecodePaginatedRequiresMeta(t *testing.T) {
	raw := json.RawMessage(`{"data": []}`)
	if _, err := DecodePaginated[item](raw); !errors.Is(err, ErrEnvelope) {
		t.Fatalf("expected ErrEnvelope for missing meta, got %v", err)
	}
}

func TestDecodeListRequiresData(t *testing.T) {
	if _, err := DecodeList[item](json.RawMessage(`{}`)); !errors.Is(err, ErrEnvelope) {
		t.Fatalf("expected ErrEnvelope for missing data, got %v", err)
	}
	list, err := DecodeList[item](json.RawMessage(`{"data":[{"id":3,"name":"c"}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Data) != 1 || list.Data[0].ID != 3 {
		t.Fatalf("unexpected list: %+v", list.Data)
	}
}

func TestDecodeSingle(t *testing.T) {
	got, err := DecodeSingle[item](json.RawMessage(`{"data":{"id":9,"name":"z"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 9 {
		t.Fatalf("unexpected item: %+v", got)
	}
	if _, err := DecodeSingle[item](json.RawMessage(`[1,2]`)); !errors.Is(err, ErrEnvelope) {
		t.Fatalf("expected ErrEnvelope for non-object, got %v", err)
	}
}
