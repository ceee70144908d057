package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item/recipe errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgInvalidRecipe  = "recipe produces no items"

	// Project errors
	ErrMsgProjectNotFound       = "project not found"
	ErrMsgProjectItemNotFound   = "item not found in project"
	ErrMsgProjectReadOnly       = "project is read-only with the public uuid"
	ErrMsgInvalidProjectUUID    = "invalid project uuid"

	// Catalog/system errors
	ErrMsgCatalogUnavailable = "catalog unavailable"

	// Validation errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidAmount   = "amount must be positive"
	ErrMsgInvalidMaxDepth = "max depth must be positive"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item/recipe errors
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrInvalidRecipe  = errors.New(ErrMsgInvalidRecipe)

	// Project errors
	ErrProjectNotFound     = errors.New(ErrMsgProjectNotFound)
	ErrProjectItemNotFound = errors.New(ErrMsgProjectItemNotFound)
	ErrProjectReadOnly     = errors.New(ErrMsgProjectReadOnly)
	ErrInvalidProjectUUID  = errors.New(ErrMsgInvalidProjectUUID)

	// Catalog errors. A failed lookup is not the same thing as a missing
	// row; callers must be able to tell an outage from "item not found".
	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)

	// Validation errors
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrInvalidAmount   = errors.New(ErrMsgInvalidAmount)
	ErrInvalidMaxDepth = errors.New(ErrMsgInvalidMaxDepth)
)
