package tresorerie

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	w := &jsonObjectWriter{}
	w.Append("b", 1).
		Append("a", "two").
		Optional("skipped", "").
		Optional("kept", 3)

	got, err := json.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":1,"a":"two","kept":3}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Embed(t *testing.T) {
	w := &jsonObjectWriter{}
	w.Embed([]byte(`{"x":1}`)).EmbedFrom(struct {
		Y int `json:"y"`
	}{2})

	got, err := json.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"x":1,"y":2}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Empty(t *testing.T) {
	got, err := json.Marshal(&jsonObjectWriter{})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{}` {
		t.Errorf("got %s, want {}", got)
	}
}
