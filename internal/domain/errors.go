package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Garden errors
	ErrMsgInvalidState      = "invalid plot state"
	ErrMsgInsufficientSeeds = "insufficient seeds"
	ErrMsgPlotNotFound      = "plot not found"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInsufficientStock = "insufficient stock"
	ErrMsgInvalidQuantity   = "invalid quantity"

	// Catalog errors
	ErrMsgVegetableNotFound  = "vegetable not found"
	ErrMsgPantryItemNotFound = "pantry item not found"
	ErrMsgRecipeNotFound     = "recipe not found"

	// Kitchen errors
	ErrMsgRecipeNotCookable = "recipe not cookable"
	ErrMsgRecipeLocked      = "recipe is locked"

	// Persistence errors
	ErrMsgPersistenceCorrupt = "persisted snapshot is corrupt"
)

// Common domain errors.
// These errors should be used consistently across all layers of the engine.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Garden errors
	ErrInvalidState      = errors.New(ErrMsgInvalidState)
	ErrInsufficientSeeds = errors.New(ErrMsgInsufficientSeeds)
	ErrPlotNotFound      = errors.New(ErrMsgPlotNotFound)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrInvalidQuantity   = errors.New(ErrMsgInvalidQuantity)

	// Catalog errors
	ErrVegetableNotFound  = errors.New(ErrMsgVegetableNotFound)
	ErrPantryItemNotFound = errors.New(ErrMsgPantryItemNotFound)
	ErrRecipeNotFound     = errors.New(ErrMsgRecipeNotFound)

	// Kitchen errors
	ErrRecipeNotCookable = errors.New(ErrMsgRecipeNotCookable)
	ErrRecipeLocked      = errors.New(ErrMsgRecipeLocked)

	// Persistence errors
	ErrPersistenceCorrupt = errors.New(ErrMsgPersistenceCorrupt)
)
