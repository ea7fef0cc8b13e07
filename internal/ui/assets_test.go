package ui

import (
	"io/fs"
	"testing"
)

func TestAssets_HasIndex(t *testing.T) {
	fsys, err := Assets()
	if err != nil {
		t.Fatal(err)
	}
	data, err := fs.ReadFile(fsys, "index.html")
	if err != nil {
		t.Fatalf("index.html missing: %v", err)
	}
	if len(data) == 0 {
		t.Error("index.html is empty")
	}
}
