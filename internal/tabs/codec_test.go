package tabs

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jotkit/jot/internal/editor"
	"github.com/jotkit/jot/internal/errors"
)

func TestMarshal_WireShape(t *testing.T) {
	r := apply(t, New(), Edit{Action: editor.Change{Text: "hello"}})
	r = apply(t, r, NewTab{})
	r = apply(t, r, Edit{Action: editor.Change{Text: "world\nmore"}})

	data, err := Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"leftTabs":[{"title":"hello","editorState":{"text":"hello"}}],"currentTab":{"title":"world","editorState":{"text":"world\nmore"}},"rightTabs":[]}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}
}

func TestMarshal_EmptyRingUsesArrays(t *testing.T) {
	data, err := Marshal(New())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"leftTabs":[],"currentTab":{"title":"","editorState":{"text":""}},"rightTabs":[]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestRoundTrip_ReachableStates(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
	}{
		{"fresh ring", nil},
		{"single edit", []Action{Edit{Action: editor.Change{Text: "note"}}}},
		{"fresh second tab keeps empty title", []Action{
			Edit{Action: editor.Change{Text: "first tab"}},
			NewTab{},
		}},
		{"untitled after empty edit", []Action{
			Edit{Action: editor.Change{Text: ""}},
		}},
		{"several tabs with navigation", []Action{
			Edit{Action: editor.Change{Text: "alpha"}},
			NewTab{},
			Edit{Action: editor.Change{Text: "beta\nbody"}},
			NewTab{},
			Edit{Action: editor.Change{Text: "a much longer first line"}},
			Navigate{Direction: -1},
		}},
		{"after closes", []Action{
			Edit{Action: editor.Change{Text: "one"}},
			NewTab{},
			Edit{Action: editor.Change{Text: "two"}},
			NewTab{},
			Edit{Action: editor.Change{Text: "three"}},
			Navigate{Direction: -2},
			Close{Direction: 2},
		}},
		{"unicode content", []Action{
			Edit{Action: editor.Change{Text: "héllo 🙂 world\nsecond line"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			for _, a := range tt.actions {
				r = apply(t, r, a)
			}

			data, err := Marshal(r)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			got, err := Unmarshal(data)
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			if diff := cmp.Diff(r, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnmarshal_EmptyRing(t *testing.T) {
	input := `{"leftTabs":[],"currentTab":{"title":"","editorState":{"text":""}},"rightTabs":[]}`

	got, err := Unmarshal([]byte(input))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if diff := cmp.Diff(New(), got); diff != "" {
		t.Errorf("ring mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshal_TrustsStoredTitles(t *testing.T) {
	// A persisted title is not re-derived; a fresh tab's empty title
	// must survive the trip.
	input := `{"leftTabs":[{"title":"","editorState":{"text":"body without title derivation"}}],"currentTab":{"title":"kept","editorState":{"text":"different"}},"rightTabs":[]}`

	got, err := Unmarshal([]byte(input))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.Left[0].Title != "" {
		t.Errorf("left title = %q, want empty", got.Left[0].Title)
	}
	if got.Current.Title != "kept" {
		t.Errorf("current title = %q, want %q", got.Current.Title, "kept")
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated json", `{"leftTabs":`},
		{"not an object", `[]`},
		{"null", `null`},
		{"missing leftTabs", `{"currentTab":{"title":"","editorState":{"text":""}},"rightTabs":[]}`},
		{"null leftTabs", `{"leftTabs":null,"currentTab":{"title":"","editorState":{"text":""}},"rightTabs":[]}`},
		{"missing rightTabs", `{"leftTabs":[],"currentTab":{"title":"","editorState":{"text":""}}}`},
		{"missing currentTab", `{"leftTabs":[],"rightTabs":[]}`},
		{"numeric currentTab", `{"leftTabs":[],"currentTab":7,"rightTabs":[]}`},
		{"non-object array entry", `{"leftTabs":[42],"currentTab":{"title":"","editorState":{"text":""}},"rightTabs":[]}`},
		{"entry missing title", `{"leftTabs":[{"editorState":{"text":""}}],"currentTab":{"title":"","editorState":{"text":""}},"rightTabs":[]}`},
		{"entry numeric title", `{"leftTabs":[{"title":9,"editorState":{"text":""}}],"currentTab":{"title":"","editorState":{"text":""}},"rightTabs":[]}`},
		{"entry missing editorState", `{"leftTabs":[{"title":"x"}],"currentTab":{"title":"","editorState":{"text":""}},"rightTabs":[]}`},
		{"editorState missing text", `{"leftTabs":[],"currentTab":{"title":"","editorState":{}},"rightTabs":[]}`},
		{"editorState numeric text", `{"leftTabs":[],"currentTab":{"title":"","editorState":{"text":1}},"rightTabs":[]}`},
		{"null editorState", `{"leftTabs":[],"currentTab":{"title":"","editorState":null},"rightTabs":[]}`},
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

func TestParseAction(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Action
	}{
		{"edit", `{"type":"edit-tab","action":{"type":"change","text":"hi"}}`, Edit{Action: editor.Change{Text: "hi"}}},
		{"edit empty text", `{"type":"edit-tab","action":{"type":"change","text":""}}`, Edit{Action: editor.Change{Text: ""}}},
		{"new tab", `{"type":"new-tab"}`, NewTab{}},
		{"navigate", `{"type":"change-tab","direction":-2}`, Navigate{Direction: -2}},
		{"navigate zero", `{"type":"change-tab","direction":0}`, Navigate{Direction: 0}},
		{"close", `{"type":"close-tab","direction":1}`, Close{Direction: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseAction() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseAction() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseAction_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind errors.Kind
	}{
		{"unknown type", `{"type":"duplicate-tab"}`, errors.KindInvalidAction},
		{"empty type", `{}`, errors.KindInvalidAction},
		{"bad json", `{"type":`, errors.KindMalformedData},
		{"navigate missing direction", `{"type":"change-tab"}`, errors.KindMalformedData},
		{"close missing direction", `{"type":"close-tab"}`, errors.KindMalformedData},
		{"fractional direction", `{"type":"change-tab","direction":1.5}`, errors.KindMalformedData},
		{"edit missing action", `{"type":"edit-tab"}`, errors.KindMalformedData},
		{"edit unknown inner type", `{"type":"edit-tab","action":{"type":"insert","text":"x"}}`, errors.KindMalformedData},
		{"edit missing text", `{"type":"edit-tab","action":{"type":"change"}}`, errors.KindMalformedData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAction([]byte(tt.input))
			if err == nil {
				t.Fatal("ParseAction() should return an error")
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("error kind = %v, want %v", errors.GetKind(err), tt.wantKind)
			}
		})
	}
}

func TestMarshalAction(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   string
	}{
		{"edit", Edit{Action: editor.Change{Text: "hi"}}, `{"type":"edit-tab","action":{"type":"change","text":"hi"}}`},
		{"new tab", NewTab{}, `{"type":"new-tab"}`},
		{"navigate", Navigate{Direction: 3}, `{"type":"change-tab","direction":3}`},
		{"close zero", Close{Direction: 0}, `{"type":"close-tab","direction":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalAction(tt.action)
			if err != nil {
				t.Fatalf("MarshalAction() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("MarshalAction() = %s, want %s", data, tt.want)
			}

			// The codec must round-trip through ParseAction.
			back, err := ParseAction(data)
			if err != nil {
				t.Fatalf("ParseAction() error = %v", err)
			}
			if back != tt.action {
				t.Errorf("round trip = %#v, want %#v", back, tt.action)
			}
		})
	}
}

func TestMarshalAction_Unknown(t *testing.T) {
	_, err := MarshalAction(nil)
	if err == nil {
		t.Fatal("MarshalAction(nil) should return an error")
	}
	if !errors.Is(err, errors.KindInvalidAction) {
		t.Errorf("error kind = %v, want KindInvalidAction", errors.GetKind(err))
	}
}
