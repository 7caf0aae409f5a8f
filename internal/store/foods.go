package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"forkful/models"
)

// FoodInput carries the form fields for creating or updating a food.
type FoodInput struct {
	Name          string
	Calories      float64
	Protein       float64
	Carbohydrates float64
	Fats          float64
	ServingSize   float64
	ServingUnit   string
	Measurements  []string
}

// CreateFood validates and persists a new catalog entry. Names are unique
// case-insensitively and the serving unit always joins the measurement set.
func (s *Store) CreateFood(ctx context.Context, input FoodInput) (*models.Food, error) {
	record, err := foodFromInput(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.FindFoodByName(ctx, record.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateFood, record.Name)
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}
	return record, nil
}

// UpdateFood replaces the mutable fields of an existing food. The identity
// (ID) is immutable; renaming onto another food's name is rejected.
func (s *Store) UpdateFood(ctx context.Context, id uint, input FoodInput) (*models.Food, error) {
	replacement, err := foodFromInput(input)
	if err != nil {
		return nil, err
	}

	var current models.Food
	if err := s.db.WithContext(ctx).Preload("Measurements").First(&current, id).Error; err != nil {
		return nil, err
	}

	if holder, err := s.FindFoodByName(ctx, replacement.Name); err != nil {
		return nil, err
	} else if holder != nil && holder.ID != id {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateFood, replacement.Name)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"name":          replacement.Name,
			"calories":      replacement.Calories,
			"protein":       replacement.Protein,
			"carbohydrates": replacement.Carbohydrates,
			"fats":          replacement.Fats,
			"serving_size":  replacement.ServingSize,
			"serving_unit":  replacement.ServingUnit,
		}
		if err := tx.Model(&current).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("food_id = ?", id).Delete(&models.Measurement{}).Error; err != nil {
			return err
		}
		for i := range replacement.Measurements {
			replacement.Measurements[i].FoodID = id
		}
		if len(replacement.Measurements) > 0 {
			if err := tx.Create(&replacement.Measurements).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update food: %w", err)
	}

	return s.GetFood(ctx, id)
}

// GetFood loads one food with its measurement set.
func (s *Store) GetFood(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).Preload("Measurements").First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// FindFoodByName looks a food up by its case-insensitive name. A missing
// food returns (nil, nil).
func (s *Store) FindFoodByName(ctx context.Context, name string) (*models.Food, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, nil
	}
	var food models.Food
	err := s.db.WithContext(ctx).
		Preload("Measurements").
		Where("lower(name) = ?", strings.ToLower(trimmed)).
		First(&food).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

// ListFoods returns the catalog ordered by name.
func (s *Store) ListFoods(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	err := s.db.WithContext(ctx).
		Preload("Measurements").
		Order("lower(name) asc").
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

func foodFromInput(input FoodInput) (*models.Food, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("food name must not be empty")
	}
	if input.ServingSize <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServing, input.ServingSize)
	}

	servingUnit := strings.TrimSpace(input.ServingUnit)
	if servingUnit == "" {
		servingUnit = models.DefaultServingUnit
	}

	food := &models.Food{
		Name:          name,
		Calories:      input.Calories,
		Protein:       input.Protein,
		Carbohydrates: input.Carbohydrates,
		Fats:          input.Fats,
		ServingSize:   input.ServingSize,
		ServingUnit:   servingUnit,
	}

	seen := map[string]struct{}{strings.ToLower(servingUnit): {}}
	food.Measurements = append(food.Measurements, models.Measurement{Unit: servingUnit})
	for _, unit := range input.Measurements {
		trimmed := strings.TrimSpace(unit)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		food.Measurements = append(food.Measurements, models.Measurement{Unit: trimmed})
	}

	return food, nil
}
