package models

import "errors"

// ErrStorageRead indicates the persisted collection could not be read or decoded.
var ErrStorageRead = errors.New("storage read failed")

// ErrStorageWrite indicates the collection could not be persisted. The
// in-memory mutation is kept regardless; persistence is best-effort.
var ErrStorageWrite = errors.New("storage write failed")

// ErrValidation indicates a required item field is missing or invalid.
var ErrValidation = errors.New("invalid item")

// ErrLookupUnavailable indicates the product database could not be reached.
// It is advisory only and never blocks manual entry.
var ErrLookupUnavailable = errors.New("product lookup unavailable")
