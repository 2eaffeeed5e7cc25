package catalog_test

import (
	"testing"

	"github.com/remaimber-it/quiz-backend/internal/domain/catalog"
)

func TestAll_Order(t *testing.T) {
	want := []string{"JavaScript", "HTML", "PHP", "Laravel", "Python", "Docker", catalog.Random}

	all := catalog.All()
	if len(all) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(all))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, all[i].Name)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := catalog.All()
	all[1].Difficulties[0] = "impossible"

	html, _ := catalog.Lookup("HTML")
	if html.Difficulties[0] != "easy" {
		t.Errorf("catalog was mutated through All(): %v", html.Difficulties)
	}
}

func TestLookup(t *testing.T) {
	python, ok := catalog.Lookup("Python")
	if !ok {
		t.Fatal("expected Python to be in the catalog")
	}
	if len(python.Difficulties) != 2 {
		t.Errorf("expected 2 difficulties, got %v", python.Difficulties)
	}

	if _, ok := catalog.Lookup("Cobol"); ok {
		t.Error("expected Cobol to be unknown")
	}
}

func TestRandomCategory(t *testing.T) {
	random, ok := catalog.Lookup(catalog.Random)
	if !ok {
		t.Fatal("expected Random to be in the catalog")
	}
	if len(random.Difficulties) != 1 || random.Difficulties[0] != catalog.RandomDifficulty {
		t.Errorf("expected single synthetic difficulty, got %v", random.Difficulties)
	}
	if !catalog.IsRandom(random.Name) {
		t.Error("expected IsRandom to be true")
	}
	if catalog.IsRandom("PHP") {
		t.Error("expected PHP not to be random")
	}
}

func TestHasDifficulty(t *testing.T) {
	docker, _ := catalog.Lookup("Docker")
	if !docker.HasDifficulty("hard") {
		t.Error("expected Docker to support hard")
	}

	laravel, _ := catalog.Lookup("Laravel")
	if laravel.HasDifficulty("hard") {
		t.Error("expected Laravel not to support hard")
	}
}
