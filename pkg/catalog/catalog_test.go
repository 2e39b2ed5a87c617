package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"medimatch/pkg/domain"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "medicines.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, ErrDatasetNotFound) {
		t.Fatalf("expected ErrDatasetNotFound, got %v", err)
	}
}

func TestLoadSchemaMismatch(t *testing.T) {
	path := writeDataset(t, "name,manufacturer_name\nFebrex Tablet,Acme\n")
	_, err := Load(path)
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeDataset(t, "")
	_, err := Load(path)
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch for empty file, got %v", err)
	}
}

func TestLoadDropsRowsWithoutTreatmentClause(t *testing.T) {
	path := writeDataset(t, "name,manufacturer_name,medicine_desc,extra\n"+
		"Febrex Tablet,Acme,Used to treat fever and pain. Take twice daily,ignored\n"+
		"Vitamin Drops,Nutri,Daily supplement for growth,ignored\n")
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("expected 1 usable entry, got %d", cat.Len())
	}
	med := cat.Medicines()[0]
	if med.Name != "Febrex Tablet" {
		t.Fatalf("unexpected entry %q", med.Name)
	}
	if med.TreatsRaw != "fever and pain" {
		t.Fatalf("unexpected treats clause %q", med.TreatsRaw)
	}
	if med.Type != domain.TypeTablet {
		t.Fatalf("unexpected type %q", med.Type)
	}
}

func TestExtractTreats(t *testing.T) {
	tests := []struct {
		desc string
		want string
		ok   bool
	}{
		{"Used to treat fever.", "fever", true},
		{"This medicine is for the treatment of migraine, take daily", "migraine", true},
		{"Prescribed to treat cough and cold. Twice daily", "cough and cold", true},
		{"USED TO TREAT joint pain", "joint pain", true},
		{"A daily multivitamin supplement", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ExtractTreats(tt.desc)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("ExtractTreats(%q) = (%q, %v), want (%q, %v)", tt.desc, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeTreats(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fever and pain", "fever and pain"},
		{"used to treat fever!", "fever"},
		{"ment of headache", "headache"},
		{"fever & cold (severe)", "fever  cold severe"},
		{"treatment of anxiety", "anxiety"},
	}
	for _, tt := range tests {
		if got := NormalizeTreats(tt.in); got != tt.want {
			t.Fatalf("NormalizeTreats(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTreatsIdempotent(t *testing.T) {
	inputs := []string{
		"used to treat fever and pain",
		"for the treatment of migraine",
		"ment of cough & cold",
		"high blood pressure (hypertension)",
	}
	for _, in := range inputs {
		once := NormalizeTreats(in)
		if twice := NormalizeTreats(once); twice != once {
			t.Fatalf("normalization not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestClassifyType(t *testing.T) {
	tests := []struct {
		name string
		want domain.MedicineType
	}{
		{"Paracetamol Tablet", domain.TypeTablet},
		{"Cough Syrup", domain.TypeSyrup},
		{"XYZ Drops", domain.TypeOther},
		{"Combo Syrup Tablet Pack", domain.TypeTablet},
		{"TABLET 500", domain.TypeTablet},
	}
	for _, tt := range tests {
		if got := ClassifyType(tt.name); got != tt.want {
			t.Fatalf("ClassifyType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
