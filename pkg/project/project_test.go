package project

import (
	"path/filepath"
	"testing"

	"github.com/mg-tools/snes65816/pkg/analysis"
)

func TestSanitizeLabelName(t *testing.T) {
	cases := map[string]string{
		"main_loop":    "main_loop",
		"main loop!":   "mainloop",
		"Sub.Routine1": "Sub.Routine1",
		"":             "",
	}
	for in, want := range cases {
		if got := SanitizeLabelName(in); got != want {
			t.Errorf("SanitizeLabelName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStore_SetLabelNameNotifiesAndSanitizes(t *testing.T) {
	var notified int
	s := New(func() { notified++ })

	s.SetLabelName(0x8000, "boot!loop")
	if notified != 1 {
		t.Fatalf("onChange called %d times, want 1", notified)
	}
	name, ok := s.Name(0x8000)
	if !ok || name != "bootloop" {
		t.Errorf("Name(0x8000) = (%q, %v), want (bootloop, true)", name, ok)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")

	s := New(nil)
	s.AddRule(analysis.Rule{Kind: analysis.RuleJumpTable, At: 0x8000, Count: 4, Long: false})
	s.SetLabelName(0x8000, "main_loop")
	s.AddComment(0x8000, "entry point")
	// An address with no comments left after edits must not round-trip.
	s.AddComment(0x8010, "temp")
	s.ClearComments(0x8010)

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	rules := loaded.Rules()
	if len(rules) != 1 || rules[0].At != 0x8000 || rules[0].Count != 4 {
		t.Errorf("Rules() = %+v, want one jump table rule at 0x8000 count 4", rules)
	}
	if name, ok := loaded.Name(0x8000); !ok || name != "main_loop" {
		t.Errorf("Name(0x8000) = (%q, %v), want (main_loop, true)", name, ok)
	}
	if got := loaded.Comments(0x8000); len(got) != 1 || got[0] != "entry point" {
		t.Errorf("Comments(0x8000) = %v, want [\"entry point\"]", got)
	}
	if got := loaded.Comments(0x8010); len(got) != 0 {
		t.Errorf("Comments(0x8010) = %v, want empty (dropped on save)", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if err == nil {
		t.Errorf("Load() on missing file: got nil error, want one")
	}
}

func TestStore_CommentedAddressesSorted(t *testing.T) {
	s := New(nil)
	s.AddComment(0x9000, "b")
	s.AddComment(0x8000, "a")
	got := s.CommentedAddresses()
	if len(got) != 2 || got[0] != 0x8000 || got[1] != 0x9000 {
		t.Errorf("CommentedAddresses() = %v, want [0x8000, 0x9000]", got)
	}
}

