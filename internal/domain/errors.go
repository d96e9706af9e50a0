package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Garden command errors
	ErrMsgPlotOutOfRange    = "plot index out of range"
	ErrMsgPlotOccupied      = "plot is occupied"
	ErrMsgPlotEmpty         = "plot is empty"
	ErrMsgUnknownPlant      = "unknown plant"
	ErrMsgPlantLocked       = "plant is locked"
	ErrMsgUnknownUpgrade    = "unknown upgrade"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgMaxLevel          = "upgrade is at max level"
	ErrMsgPrestigeNotReady  = "not eligible for prestige"
	ErrMsgNothingPending    = "no pending offline reward"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"

	// Persistence errors
	ErrMsgSlotEmpty       = "save slot is empty"
	ErrMsgInvalidSnapshot = "invalid snapshot"
	ErrMsgStaleSnapshot   = "snapshot superseded by a newer save"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlotOutOfRange      = errors.New(ErrMsgPlotOutOfRange)
	ErrPlotOccupied        = errors.New(ErrMsgPlotOccupied)
	ErrPlotEmpty           = errors.New(ErrMsgPlotEmpty)
	ErrUnknownPlant        = errors.New(ErrMsgUnknownPlant)
	ErrPlantLocked         = errors.New(ErrMsgPlantLocked)
	ErrUnknownUpgrade      = errors.New(ErrMsgUnknownUpgrade)
	ErrInsufficientFunds   = errors.New(ErrMsgInsufficientFunds)
	ErrMaxLevel            = errors.New(ErrMsgMaxLevel)
	ErrPrestigeNotEligible = errors.New(ErrMsgPrestigeNotReady)
	ErrNothingPending      = errors.New(ErrMsgNothingPending)

	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	ErrSlotEmpty       = errors.New(ErrMsgSlotEmpty)
	ErrInvalidSnapshot = errors.New(ErrMsgInvalidSnapshot)
	ErrStaleSnapshot   = errors.New(ErrMsgStaleSnapshot)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
