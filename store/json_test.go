package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type doc struct {
	Name  string         `json:"name"`
	Items map[string]int `json:"items"`
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.json")
	want := doc{Name: "beads", Items: map[string]int{"red": 3}}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var got doc
	ok, err := Load(path, &got)
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v", ok, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("folder has %d entries after Save, want 1", len(entries))
	}
}

func TestLoadMissing(t *testing.T) {
	got := doc{Name: "untouched"}
	ok, err := Load(filepath.Join(t.TempDir(), "missing.json"), &got)
	if err != nil || ok {
		t.Fatalf("Load() = %v, %v", ok, err)
	}
	if got.Name != "untouched" {
		t.Errorf("Load() of a missing file modified the value")
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	var got doc
	if _, err := Load(path, &got); err == nil {
		t.Error("Load() of corrupt JSON succeeded")
	}
}
