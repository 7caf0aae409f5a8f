package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"forkful/internal/engine"
	applog "forkful/internal/log"
	"forkful/models"
)

// IngredientInput is one recipe line as submitted by the editing form.
// Calories carries the previously cached value; it is kept as-is when the
// calculator cannot convert the requested unit.
type IngredientInput struct {
	FoodID      uint
	Quantity    float64
	ServingUnit string
	Calories    float64
}

// RecipeInput carries the form fields for creating or updating a recipe.
type RecipeInput struct {
	Name         string
	MealCategory string
	Description  string
	Ingredients  []IngredientInput
}

// CreateRecipe validates and persists a draft recipe. Every line must carry
// a positive quantity and reference an existing food; cached line calories
// are recomputed through the calculator on the way in.
func (s *Store) CreateRecipe(ctx context.Context, input RecipeInput) (*models.Recipe, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("recipe name must not be empty")
	}

	ingredients, err := s.buildIngredients(ctx, input.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Name:         name,
		MealCategory: models.NormalizeMealCategory(input.MealCategory),
		Description:  strings.TrimSpace(input.Description),
		Ingredients:  ingredients,
		DateAdded:    nowFunc().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return s.GetRecipe(ctx, recipe.ID)
}

// UpdateRecipe replaces the recipe's fields and its entire ingredient list.
func (s *Store) UpdateRecipe(ctx context.Context, id uint, input RecipeInput) (*models.Recipe, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("recipe name must not be empty")
	}

	var current models.Recipe
	if err := s.db.WithContext(ctx).First(&current, id).Error; err != nil {
		return nil, err
	}

	ingredients, err := s.buildIngredients(ctx, input.Ingredients)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"name":          name,
			"meal_category": models.NormalizeMealCategory(input.MealCategory),
			"description":   strings.TrimSpace(input.Description),
		}
		if err := tx.Model(&current).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].RecipeID = id
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}

	return s.GetRecipe(ctx, id)
}

// PublishRecipe stamps the recipe as published. Publishing an already
// published recipe keeps the original date.
func (s *Store) PublishRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, err
	}

	if recipe.DatePublished == nil {
		published := nowFunc().UTC()
		if err := s.db.WithContext(ctx).Model(&recipe).
			Update("date_published", &published).Error; err != nil {
			return nil, fmt.Errorf("publish recipe: %w", err)
		}
	}

	return s.GetRecipe(ctx, id)
}

// GetRecipe loads one recipe with its ingredient lines and their foods.
func (s *Store) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredients.id asc")
		}).
		Preload("Ingredients.Food").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes returns every recipe with ingredients preloaded, ordered by
// name.
func (s *Store) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredients.id asc")
		}).
		Preload("Ingredients.Food").
		Order("lower(name) asc").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// SuggestSimilarRecipe compares an in-progress ingredient-name set against
// the stored recipes, excluding the recipe being edited. ok is false when
// no stored recipe clears the similarity threshold.
func (s *Store) SuggestSimilarRecipe(ctx context.Context, names []string, excludeID uint) (engine.SimilarMatch, bool, error) {
	recipes, err := s.ListRecipes(ctx)
	if err != nil {
		return engine.SimilarMatch{}, false, err
	}

	candidates := make([]models.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if recipe.ID == excludeID {
			continue
		}
		candidates = append(candidates, recipe)
	}

	match, ok := engine.BestSimilarRecipe(names, candidates)
	if ok {
		applog.Debug(ctx, "similar recipe found",
			"recipe", match.Recipe.Name, "similarity", match.Similarity)
	}
	return match, ok, nil
}

func (s *Store) buildIngredients(ctx context.Context, inputs []IngredientInput) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, len(inputs))
	for _, input := range inputs {
		if input.Quantity <= 0 {
			return nil, fmt.Errorf("%w: ingredient quantity %v", ErrInvalidAmount, input.Quantity)
		}

		var food models.Food
		if err := s.db.WithContext(ctx).First(&food, input.FoodID).Error; err != nil {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownFood, input.FoodID)
		}

		unit := strings.TrimSpace(input.ServingUnit)
		if unit == "" {
			unit = food.ServingUnit
		}

		// Recompute the cached calories; an unconvertible unit keeps the
		// previous value instead of zeroing it.
		calories := input.Calories
		if computed, ok := engine.CalculateCalories(
			food.Calories, food.ServingSize, food.ServingUnit,
			input.Quantity, unit,
		); ok {
			calories = computed
		}

		ingredients = append(ingredients, models.Ingredient{
			FoodID:      food.ID,
			Quantity:    input.Quantity,
			ServingUnit: unit,
			Calories:    calories,
		})
	}
	return ingredients, nil
}
