package lead

import (
	"testing"
)

func strPtr(s string) *string { return &s }

func TestMergeFillMissingOnly(t *testing.T) {
	existing := NewRecord()
	existing.Name = strPtr("Claire Dubois")

	merged := Merge(existing, Partial{
		Name:       strPtr("Quelqu'un d'autre"),
		Profession: strPtr("architecte"),
	})

	if *merged.Name != "Claire Dubois" {
		t.Errorf("existing name overwritten: got %q", *merged.Name)
	}
	if merged.Profession == nil || *merged.Profession != "architecte" {
		t.Errorf("missing profession not filled: got %v", merged.Profession)
	}
}

func TestMergeNilNeverClears(t *testing.T) {
	existing := NewRecord()
	existing.Contact = strPtr("claire@example.com")
	existing.Phone = strPtr("06 12 34 56 78")

	merged := Merge(existing, Partial{})

	if merged.Contact == nil || merged.Phone == nil {
		t.Error("empty partial cleared existing fields")
	}
}

func TestMergeEmptyStringIsNotAValue(t *testing.T) {
	merged := Merge(NewRecord(), Partial{Name: strPtr("")})
	if merged.Name != nil {
		t.Errorf("empty string stored as name: %q", *merged.Name)
	}
}

func TestMergeObjectivesUnion(t *testing.T) {
	existing := NewRecord()
	existing.Objectives = []string{"préparer ma retraite"}

	merged := Merge(existing, Partial{
		Objectives: []string{"réduire mes impôts", "préparer ma retraite"},
	})

	if len(merged.Objectives) != 2 {
		t.Fatalf("want 2 objectives, got %v", merged.Objectives)
	}
	if merged.Objectives[0] != "préparer ma retraite" || merged.Objectives[1] != "réduire mes impôts" {
		t.Errorf("union order broken: %v", merged.Objectives)
	}
}

func TestMergeQualification(t *testing.T) {
	tests := []struct {
		name       string
		partial    Partial
		wantStatus string
	}{
		{
			name:       "nothing known",
			partial:    Partial{},
			wantStatus: StatusNew,
		},
		{
			name:       "name and contact only",
			partial:    Partial{Name: strPtr("Paul"), Contact: strPtr("paul@x.fr")},
			wantStatus: StatusNew,
		},
		{
			name: "full required subset",
			partial: Partial{
				Name:          strPtr("Paul"),
				Contact:       strPtr("paul@x.fr"),
				WealthBracket: strPtr("moins de 100 000 euros"),
			},
			wantStatus: StatusQualified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := Merge(NewRecord(), tt.partial)
			if merged.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", merged.Status, tt.wantStatus)
			}
		})
	}
}

func TestMergeStatusIsMonotone(t *testing.T) {
	record := Merge(NewRecord(), Partial{
		Name:          strPtr("Paul"),
		Contact:       strPtr("paul@x.fr"),
		WealthBracket: strPtr("moins de 100 000 euros"),
	})
	if record.Status != StatusQualified {
		t.Fatal("setup: record should be qualified")
	}

	again := Merge(record, Partial{})
	if again.Status != StatusQualified {
		t.Error("qualified record regressed on empty merge")
	}
}

func TestIsEmpty(t *testing.T) {
	if !(Partial{}).IsEmpty() {
		t.Error("zero partial should be empty")
	}
	if (Partial{Phone: strPtr("06")}).IsEmpty() {
		t.Error("partial with phone should not be empty")
	}
	if (Partial{Objectives: []string{"x"}}).IsEmpty() {
		t.Error("partial with objectives should not be empty")
	}
}
