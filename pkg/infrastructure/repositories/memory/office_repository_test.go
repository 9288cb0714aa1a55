package memory

import (
	"testing"

	"github.com/dsandoval/shopplan/pkg/domain/entities"
)

func TestOfficeRepository_RegistrationOrder(t *testing.T) {
	repo := NewOfficeRepository()

	names := []string{"New York", "Boston", "Chicago"}
	for _, name := range names {
		if err := repo.Add(entities.NewOffice(name)); err != nil {
			t.Fatalf("Failed to add office %s: %v", name, err)
		}
	}

	offices, err := repo.All()
	if err != nil {
		t.Fatalf("Failed to list offices: %v", err)
	}

	if len(offices) != len(names) {
		t.Fatalf("Expected %d offices, got %d", len(names), len(offices))
	}
	for i, name := range names {
		if offices[i].Name != name {
			t.Errorf("Office %d: expected %s, got %s", i, name, offices[i].Name)
		}
	}
}

func TestOfficeRepository_DuplicateNamesTrackedIndependently(t *testing.T) {
	repo := NewOfficeRepository()

	first := entities.NewOffice("Branch")
	second := entities.NewOffice("Branch")
	first.AddItem("Pens", 5)
	second.AddItem("Pens", 10)

	_ = repo.Add(first)
	_ = repo.Add(second)

	if repo.Len() != 2 {
		t.Fatalf("Expected 2 offices, got %d", repo.Len())
	}

	offices, _ := repo.All()
	if got := offices[0].Supplies().Get("Pens"); got != 5 {
		t.Errorf("First office: expected 5 pens, got %d", got)
	}
	if got := offices[1].Supplies().Get("Pens"); got != 10 {
		t.Errorf("Second office: expected 10 pens, got %d", got)
	}
}
