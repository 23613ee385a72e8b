package model

import (
	"errors"
	"fmt"
)

var (
	ErrWrongStep          = errors.New("operation is not available on the current step")
	ErrStepIncomplete     = errors.New("current step is not complete")
	ErrFirstStep          = errors.New("already at the first step")
	ErrLastStep           = errors.New("already at the confirmation step")
	ErrTablesStale        = errors.New("table list is out of date, reload tables first")
	ErrUnknownTable       = errors.New("table is not part of the current table list")
	ErrUnknownMode        = errors.New("unknown menu mode")
	ErrPackageNotSelected = errors.New("package is not part of the selection")
	ErrUnknownItem        = errors.New("item is not part of the catalog")
	ErrItemOutOfStock     = errors.New("item is out of stock")
	ErrMenuLocked         = errors.New("menu cannot change after payment")
	ErrPaymentAmount      = errors.New("paid amount does not match the total")
	ErrPaymentNotRequired = errors.New("payment is not required for this reservation")
	ErrUnknownEvent       = errors.New("unknown event")
	ErrSessionNotFound    = errors.New("booking session not found or expired")
	ErrSessionBusy        = errors.New("booking session is being updated")
)

// DetailsError carries one message per invalid contact or schedule field.
type DetailsError struct {
	Fields map[string]string
}

func (e *DetailsError) Error() string {
	return fmt.Sprintf("details are incomplete (%d invalid fields)", len(e.Fields))
}

// TableError reports why a table cannot be, or can no longer be, held by the draft.
type TableError struct {
	TableID string
	Issue   TableIssue
}

func (e *TableError) Error() string {
	return fmt.Sprintf("table %s is %s", e.TableID, e.Issue.Message())
}
