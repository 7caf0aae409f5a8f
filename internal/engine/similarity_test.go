package engine

import (
	"math"
	"testing"

	"gorm.io/gorm"

	"forkful/models"
)

func recipeWithFoods(id uint, names ...string) models.Recipe {
	recipe := models.Recipe{Model: gorm.Model{ID: id}}
	for _, name := range names {
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{
			Food: &models.Food{Name: name},
		})
	}
	return recipe
}

func TestJaccardSimilarity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{"partial overlap", []string{"ham", "cheese", "bread"}, []string{"ham", "cheese"}, 2.0 / 3.0},
		{"identical", []string{"ham", "cheese"}, []string{"ham", "cheese"}, 1},
		{"disjoint", []string{"ham"}, []string{"jam"}, 0},
		{"case and whitespace fold", []string{" Ham ", "CHEESE"}, []string{"ham", "cheese "}, 1},
		{"duplicates collapse", []string{"ham", "ham", "cheese"}, []string{"ham", "cheese"}, 1},
		{"one side empty", []string{"ham"}, nil, 0},
		{"both empty", nil, nil, 0},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := JaccardSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("JaccardSimilarity = %v, want %v", got, tt.want)
			}
			if reversed := JaccardSimilarity(tt.b, tt.a); reversed != got {
				t.Fatalf("similarity is asymmetric: %v vs %v", got, reversed)
			}
		})
	}
}

func TestBestSimilarRecipeAppliesThreshold(t *testing.T) {
	t.Parallel()

	candidates := []models.Recipe{
		recipeWithFoods(1, "ham", "cheese", "bread"),
		recipeWithFoods(2, "flour", "sugar", "butter", "eggs", "vanilla"),
	}

	match, ok := BestSimilarRecipe([]string{"ham", "cheese"}, candidates)
	if !ok {
		t.Fatal("expected a suggestion above the threshold")
	}
	if match.Recipe.ID != 1 {
		t.Fatalf("matched recipe %d, want 1", match.Recipe.ID)
	}
	if math.Abs(match.Similarity-2.0/3.0) > 1e-9 {
		t.Fatalf("Similarity = %v, want 2/3", match.Similarity)
	}

	if _, ok := BestSimilarRecipe([]string{"tofu"}, candidates); ok {
		t.Fatal("nothing clears the threshold, no suggestion expected")
	}
	if _, ok := BestSimilarRecipe(nil, candidates); ok {
		t.Fatal("empty name set must never match")
	}
}

func TestBestSimilarRecipeTieBreaksOnLowestID(t *testing.T) {
	t.Parallel()

	// Same ingredient set under two IDs, listed out of order.
	candidates := []models.Recipe{
		recipeWithFoods(9, "ham", "cheese"),
		recipeWithFoods(4, "ham", "cheese"),
	}

	match, ok := BestSimilarRecipe([]string{"ham", "cheese"}, candidates)
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Recipe.ID != 4 {
		t.Fatalf("tie resolved to recipe %d, want lowest ID 4", match.Recipe.ID)
	}
}
