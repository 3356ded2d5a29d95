package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrParse indicates that free-form price text did not match any recognized pattern.
var ErrParse = errors.New("parse error")

// ErrConcurrency indicates a write raced with another writer and was lost.
// Raised when archiving the current pricing fact modifies zero rows.
var ErrConcurrency = errors.New("concurrent modification detected")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
