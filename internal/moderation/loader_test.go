package moderation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWordbook(t *testing.T, terms []string) string {
	t.Helper()

	f := excelize.NewFile()
	for i, term := range terms {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetCellValue(f.GetSheetName(0), cell, term); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "badwords.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadForbidden(t *testing.T) {
	path := writeWordbook(t, []string{"폭력", "도박", "", "마약"})

	terms, err := LoadForbidden(path)
	if err != nil {
		t.Fatalf("LoadForbidden() error = %v", err)
	}
	want := []string{"폭력", "도박", "마약"}
	if len(terms) != len(want) {
		t.Fatalf("terms = %v, want %v", terms, want)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("terms[%d] = %q, want %q", i, terms[i], want[i])
		}
	}
}

func TestLoadForbiddenEmptyWorkbook(t *testing.T) {
	path := writeWordbook(t, nil)

	if _, err := LoadForbidden(path); err == nil {
		t.Error("LoadForbidden() error = nil, want error for empty list")
	}
}

func TestLoadForbiddenMissingFile(t *testing.T) {
	if _, err := LoadForbidden(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Error("LoadForbidden() error = nil, want error")
	}
}

func TestLoadAllowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allowwords.yaml")
	if err := os.WriteFile(path, []byte("- 폭력예방\n- 마약퇴치\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	terms, err := LoadAllowed(path)
	if err != nil {
		t.Fatalf("LoadAllowed() error = %v", err)
	}
	if len(terms) != 2 || terms[0] != "폭력예방" || terms[1] != "마약퇴치" {
		t.Errorf("terms = %v, want [폭력예방 마약퇴치]", terms)
	}
}

func TestLoadAllowedEmptyPath(t *testing.T) {
	terms, err := LoadAllowed("")
	if err != nil {
		t.Fatalf("LoadAllowed() error = %v", err)
	}
	if terms != nil {
		t.Errorf("terms = %v, want nil", terms)
	}
}

func TestLoadModerator(t *testing.T) {
	forbidden := writeWordbook(t, []string{"도박"})
	allowed := filepath.Join(t.TempDir(), "allowwords.yaml")
	if err := os.WriteFile(allowed, []byte("- 도박예방\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadModerator(forbidden, allowed)
	if err != nil {
		t.Fatalf("LoadModerator() error = %v", err)
	}
	if m.IsAdmissible("도박장") {
		t.Error("IsAdmissible(도박장) = true, want false")
	}
	if !m.IsAdmissible("도박예방 캠페인") {
		t.Error("IsAdmissible(도박예방 캠페인) = false, want true")
	}
}

func TestLoadModeratorMissingForbidden(t *testing.T) {
	if _, err := LoadModerator(filepath.Join(t.TempDir(), "absent.xlsx"), ""); err == nil {
		t.Error("LoadModerator() error = nil, want error")
	}
}
