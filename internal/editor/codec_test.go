package editor

import (
	"testing"

	"github.com/jotkit/jot/internal/errors"
)

func TestMarshal_WireShape(t *testing.T) {
	data, err := Marshal(State{Text: "hello\nworld"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"text":"hello\nworld"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"plain",
		"multi\nline\ntext",
		"unicode: héllo 🙂",
		"trailing newline\n",
	}

	for _, text := range texts {
		data, err := Marshal(State{Text: text})
		if err != nil {
			t.Fatalf("Marshal(%q) error = %v", text, err)
		}
		got, err := Unmarshal(data)
		if err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if got.Text != text {
			t.Errorf("round trip of %q = %q", text, got.Text)
		}
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated json", `{"text":`},
		{"not an object", `[1,2,3]`},
		{"null", `null`},
		{"empty object", `{}`},
		{"null text", `{"text":null}`},
		{"numeric text", `{"text":42}`},
		{"array text", `{"text":["a"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.input))
			if err == nil {
				t.Fatal("Unmarshal() should return an error")
			}
			if !errors.Is(err, errors.KindMalformedData) {
				t.Errorf("error kind = %v, want KindMalformedData", errors.GetKind(err))
			}
		})
	}
}

func TestUnmarshal_IgnoresUnknownFields(t *testing.T) {
	got, err := Unmarshal([]byte(`{"text":"kept","cursor":17}`))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Text != "kept" {
		t.Errorf("Text = %q, want %q", got.Text, "kept")
	}
}
