package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"forkful/internal/engine"
	applog "forkful/internal/log"
	"forkful/models"
)

// PantryItemInput carries the form fields for creating or updating a pantry
// item. QuantityLeft and CurrentSize/CurrentUnit default to the purchased
// quantity and original size when zero-valued.
type PantryItemInput struct {
	FoodID         uint
	Quantity       float64
	QuantityLeft   float64
	OriginalSize   float64
	OriginalUnit   string
	CurrentSize    float64
	CurrentUnit    string
	ExpirationDate *time.Time
	FrozenDate     *time.Time
}

// CreatePantryItem validates and persists a purchased lot. The freshness
// status is computed once at creation and then only changes on update or an
// explicit refresh.
func (s *Store) CreatePantryItem(ctx context.Context, input PantryItemInput) (*models.PantryItem, error) {
	item, err := s.pantryItemFromInput(ctx, input)
	if err != nil {
		return nil, err
	}

	item.AddedDate = nowFunc().UTC()
	item.Status = engine.ItemStatus(item.ExpirationDate, nowFunc())

	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("create pantry item: %w", err)
	}
	return s.GetPantryItem(ctx, item.ID)
}

// UpdatePantryItem replaces the mutable fields of a lot and recomputes its
// status against the current clock.
func (s *Store) UpdatePantryItem(ctx context.Context, id uint, input PantryItemInput) (*models.PantryItem, error) {
	var current models.PantryItem
	if err := s.db.WithContext(ctx).First(&current, id).Error; err != nil {
		return nil, err
	}

	replacement, err := s.pantryItemFromInput(ctx, input)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"food_id":         replacement.FoodID,
		"quantity":        replacement.Quantity,
		"quantity_left":   replacement.QuantityLeft,
		"original_size":   replacement.OriginalSize,
		"original_unit":   replacement.OriginalUnit,
		"current_size":    replacement.CurrentSize,
		"current_unit":    replacement.CurrentUnit,
		"expiration_date": replacement.ExpirationDate,
		"frozen_date":     replacement.FrozenDate,
		"status":          engine.ItemStatus(replacement.ExpirationDate, nowFunc()),
	}
	if err := s.db.WithContext(ctx).Model(&current).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update pantry item: %w", err)
	}

	return s.GetPantryItem(ctx, id)
}

// ConsumePantryItem subtracts an amount from the open package, converting
// the amount into the item's unit when needed. Only the open package can be
// drawn from; draining it exactly decrements QuantityLeft and, when more
// packages remain, opens the next one at the original size. Consumption also
// recomputes the status, matching the update recomputation point.
func (s *Store) ConsumePantryItem(ctx context.Context, id uint, amount float64, unit string) (*models.PantryItem, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	var item models.PantryItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}

	consumed := amount
	if !engine.SameUnit(unit, item.CurrentUnit) {
		converted, ok := engine.ConvertUnit(amount, unit, item.CurrentUnit)
		if !ok {
			return nil, fmt.Errorf("%w: %s into %s", ErrUnitMismatch, unit, item.CurrentUnit)
		}
		consumed = converted
	}

	if consumed > item.CurrentSize {
		return nil, fmt.Errorf("%w: have %v %s, want %v", ErrShortStock, item.CurrentSize, item.CurrentUnit, consumed)
	}

	remaining := item.CurrentSize - consumed
	quantityLeft := item.QuantityLeft
	currentUnit := item.CurrentUnit
	if remaining == 0 && quantityLeft > 0 {
		quantityLeft--
		if quantityLeft > 0 {
			remaining = item.OriginalSize
			currentUnit = item.OriginalUnit
		}
	}

	updates := map[string]any{
		"current_size":  remaining,
		"current_unit":  currentUnit,
		"quantity_left": quantityLeft,
		"status":        engine.ItemStatus(item.ExpirationDate, nowFunc()),
	}
	if err := s.db.WithContext(ctx).Model(&item).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("consume pantry item: %w", err)
	}

	return s.GetPantryItem(ctx, id)
}

// GetPantryItem loads one lot with its food.
func (s *Store) GetPantryItem(ctx context.Context, id uint) (*models.PantryItem, error) {
	var item models.PantryItem
	if err := s.db.WithContext(ctx).Preload("Food").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListPantryItems returns the whole pantry, oldest lots first.
func (s *Store) ListPantryItems(ctx context.Context) ([]models.PantryItem, error) {
	var items []models.PantryItem
	err := s.db.WithContext(ctx).
		Preload("Food").
		Order("added_date asc, id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// RefreshItemStatuses recomputes every lot's freshness against the current
// clock and persists the ones that changed. This is the only recomputation
// point besides create and update; between refreshes a stale status can
// linger past actual expiry. It returns the number of changed lots.
func (s *Store) RefreshItemStatuses(ctx context.Context) (int, error) {
	var items []models.PantryItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return 0, err
	}

	now := nowFunc()
	changed := 0
	for _, item := range items {
		status := engine.ItemStatus(item.ExpirationDate, now)
		if status == item.Status {
			continue
		}
		if err := s.db.WithContext(ctx).Model(&item).Update("status", status).Error; err != nil {
			return changed, fmt.Errorf("refresh pantry item %d: %w", item.ID, err)
		}
		changed++
	}

	if changed > 0 {
		applog.Info(ctx, "pantry statuses refreshed", "changed", changed, "total", len(items))
	}
	return changed, nil
}

func (s *Store) pantryItemFromInput(ctx context.Context, input PantryItemInput) (*models.PantryItem, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, input.FoodID).Error; err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownFood, input.FoodID)
	}

	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity %v", ErrInvalidAmount, input.Quantity)
	}
	if input.OriginalSize <= 0 {
		return nil, fmt.Errorf("%w: original size %v", ErrInvalidAmount, input.OriginalSize)
	}

	quantityLeft := input.QuantityLeft
	if quantityLeft == 0 {
		quantityLeft = input.Quantity
	}
	if quantityLeft < 0 || quantityLeft > input.Quantity {
		return nil, fmt.Errorf("%w: %v of %v left", ErrInvalidAmount, quantityLeft, input.Quantity)
	}

	originalUnit := strings.TrimSpace(input.OriginalUnit)
	if originalUnit == "" {
		originalUnit = food.ServingUnit
	}

	currentSize := input.CurrentSize
	currentUnit := strings.TrimSpace(input.CurrentUnit)
	if currentUnit == "" {
		currentUnit = originalUnit
	}
	if currentSize == 0 {
		currentSize = input.OriginalSize
		currentUnit = originalUnit
	}
	if currentSize < 0 {
		return nil, fmt.Errorf("%w: current size %v", ErrInvalidAmount, currentSize)
	}

	// The size invariant is only checkable when the two units convert; an
	// incomparable pair is left unchecked on purpose.
	inOriginal := currentSize
	comparable := engine.SameUnit(currentUnit, originalUnit)
	if !comparable {
		if converted, ok := engine.ConvertUnit(currentSize, currentUnit, originalUnit); ok {
			inOriginal = converted
			comparable = true
		}
	}
	if comparable && inOriginal > input.OriginalSize {
		return nil, fmt.Errorf("%w: %v %s of %v %s",
			ErrSizeExceeded, currentSize, currentUnit, input.OriginalSize, originalUnit)
	}

	return &models.PantryItem{
		FoodID:         food.ID,
		Quantity:       input.Quantity,
		QuantityLeft:   quantityLeft,
		OriginalSize:   input.OriginalSize,
		OriginalUnit:   originalUnit,
		CurrentSize:    currentSize,
		CurrentUnit:    currentUnit,
		ExpirationDate: input.ExpirationDate,
		FrozenDate:     input.FrozenDate,
	}, nil
}
