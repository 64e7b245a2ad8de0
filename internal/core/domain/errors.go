package domain

import "errors"

// Authentication / authorization.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPortalAccessDenied = errors.New("portal access denied")
	ErrForbidden          = errors.New("access forbidden")
)

// Lookup failures, one per aggregate so the error handler can phrase them.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrDeliverableNotFound = errors.New("deliverable not found")
	ErrTimeEntryNotFound   = errors.New("time entry not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
)

// ErrValidation marks semantic input failures detected past the schema
// validator, e.g. a task attached to the wrong project.
var ErrValidation = errors.New("invalid input")

// Mutation conflicts.
var (
	ErrEmailTaken        = errors.New("email already in use")
	ErrHasDependents     = errors.New("record has dependent records")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrSelfDelete        = errors.New("cannot delete own account")
)
