package enrich

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func testLookup(responses ...MockResponse) (*Lookup, *MockProvider) {
	mock := NewMockProvider(responses...)
	return NewLookup(mock, time.Second), mock
}

func TestLookupReturnsRecords(t *testing.T) {
	l, mock := testLookup(MockResponse{
		Content: json.RawMessage(`[
			{"char":"猫","pinyin":"māo","meaning":"cat"},
			{"char":"狗","pinyin":"gǒu","meaning":"dog"}
		]`),
	})

	got := l.Characters(context.Background(), []string{"猫", "狗"})
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Glyph != "猫" || got[0].Pinyin != "māo" || got[0].Meaning != "cat" {
		t.Errorf("record = %+v", got[0])
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times", mock.CallCount())
	}
}

func TestLookupFailsOpen(t *testing.T) {
	l, _ := testLookup(MockResponse{Err: &ErrProviderUnavailable{}})

	got := l.Characters(context.Background(), []string{"猫"})
	if got != nil {
		t.Errorf("got %v, want nil on provider failure", got)
	}
}

func TestLookupDiscardsMalformedRecords(t *testing.T) {
	l, _ := testLookup(MockResponse{
		Content: json.RawMessage(`[
			{"char":"猫","pinyin":"māo","meaning":"cat"},
			{"char":"","pinyin":"x","meaning":"empty glyph"},
			{"char":"狗","pinyin":"","meaning":"missing pinyin"},
			{"char":"鸭","pinyin":"yā","meaning":"unrequested"}
		]`),
	})

	got := l.Characters(context.Background(), []string{"猫", "狗"})
	if len(got) != 1 || got[0].Glyph != "猫" {
		t.Errorf("got %v, want only 猫", got)
	}
}

func TestLookupEmptyRequest(t *testing.T) {
	l, mock := testLookup()
	if got := l.Characters(context.Background(), nil); got != nil {
		t.Errorf("got %v for empty request", got)
	}
	if mock.CallCount() != 0 {
		t.Error("provider called for empty request")
	}
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid array", `[{"char":"水","pinyin":"shuǐ","meaning":"water"}]`, false},
		{"empty array", `[]`, false},
		{"missing field", `[{"char":"水"}]`, true},
		{"not an array", `{"char":"水"}`, true},
		{"not JSON", `oops`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := characterInfoSchema.Validate(json.RawMessage(tt.content))
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%s) err = %v, wantErr %v", tt.content, err, tt.wantErr)
			}
		})
	}
}
