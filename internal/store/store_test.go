package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"forkful/internal/config"
	"forkful/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := config.StoreConfig{
		Name: fmt.Sprintf("store-test-%d", time.Now().UnixNano()),
	}
	s, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	return s
}

// fixClock pins the store clock. Tests using it must not run in parallel.
func fixClock(t *testing.T, instant time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return instant }
	t.Cleanup(func() { nowFunc = prev })
}

func TestOpenSeedsRepresentativeData(t *testing.T) {
	ctx := context.Background()
	fixClock(t, time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC))

	cfg := config.StoreConfig{
		Name: fmt.Sprintf("seed-test-%d", time.Now().UnixNano()),
		Seed: true,
	}
	s, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("open seeded store: %v", err)
	}

	foods, err := s.ListFoods(ctx)
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	if len(foods) == 0 {
		t.Fatal("expected seeded foods")
	}

	recipes, err := s.ListRecipes(ctx)
	if err != nil {
		t.Fatalf("list recipes: %v", err)
	}
	if len(recipes) == 0 {
		t.Fatal("expected seeded recipes")
	}
	for _, recipe := range recipes {
		if !recipe.Published() {
			t.Fatalf("seed recipe %q should be published", recipe.Name)
		}
		if len(recipe.Ingredients) == 0 {
			t.Fatalf("seed recipe %q has no ingredients", recipe.Name)
		}
		for _, ingredient := range recipe.Ingredients {
			if ingredient.Food == nil {
				t.Fatalf("seed recipe %q has an unlinked ingredient", recipe.Name)
			}
		}
	}

	items, err := s.ListPantryItems(ctx)
	if err != nil {
		t.Fatalf("list pantry: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected seeded pantry items")
	}
	for _, item := range items {
		if !models.ValidItemStatus(item.Status) {
			t.Fatalf("seed pantry item %d carries invalid status %q", item.ID, item.Status)
		}
	}
}

func TestOpenRejectsEmptyName(t *testing.T) {
	if _, err := Open(context.Background(), config.StoreConfig{Name: "  "}); err == nil {
		t.Fatal("expected error for blank store name")
	}
}
