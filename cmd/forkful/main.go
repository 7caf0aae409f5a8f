package main

import (
	"context"
	"os"

	"forkful/internal/catalog"
	"forkful/internal/config"
	applog "forkful/internal/log"
	"forkful/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		applog.Error(ctx, "invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "error", err)
		os.Exit(1)
	}

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		applog.Error(ctx, "opening store failed", "error", err)
		os.Exit(1)
	}

	if err := run(ctx, st); err != nil {
		applog.Error(ctx, "forkful run failed", "error", err)
		os.Exit(1)
	}
}

// run refreshes pantry statuses and reports the current state of the
// catalog: how ready each recipe is and which items expire soon.
func run(ctx context.Context, st *store.Store) error {
	if _, err := st.RefreshItemStatuses(ctx); err != nil {
		return err
	}

	foods, err := st.ListFoods(ctx)
	if err != nil {
		return err
	}
	recipes, err := st.ListRecipes(ctx)
	if err != nil {
		return err
	}
	items, err := st.ListPantryItems(ctx)
	if err != nil {
		return err
	}

	snapshot := catalog.NewSnapshot(foods, recipes, items)
	applog.Info(ctx, "catalog loaded",
		"foods", len(snapshot.Foods),
		"recipes", len(snapshot.Recipes),
		"pantry_items", len(snapshot.PantryItems))

	for _, recipe := range snapshot.Recipes {
		readiness, ok := snapshot.Readiness[recipe.ID]
		if !ok {
			continue
		}
		applog.Info(ctx, "recipe readiness",
			"recipe", recipe.Name,
			"score", readiness.Score,
			"available", readiness.AvailableIngredients,
			"partial", readiness.PartialIngredients,
			"missing", readiness.MissingIngredients)
	}

	lookup := snapshot.FoodLookup()
	for _, item := range snapshot.ExpiringSoon() {
		name, ok := lookup[item.FoodID]
		if !ok {
			name = "unknown"
		}
		applog.Warn(ctx, "pantry item expiring soon",
			"food", name,
			"left", item.CurrentSize,
			"unit", item.CurrentUnit)
	}

	return nil
}
