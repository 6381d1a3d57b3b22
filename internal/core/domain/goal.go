package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// GoalType determines the direction in which progress is "good".
type GoalType string

const (
	// GoalSaving targets accumulating at least TargetAmount; higher progress is better.
	GoalSaving GoalType = "SAVING"
	// GoalSpendingLimit caps spending at TargetAmount; lower progress is better.
	GoalSpendingLimit GoalType = "SPENDING_LIMIT"
)

// GoalPeriod is the window a goal applies to.
type GoalPeriod string

const (
	PeriodMonthly GoalPeriod = "MONTHLY"
	PeriodYearly  GoalPeriod = "YEARLY"
)

// GoalStatus is the derived tri-state stored on the goal record.
// EXCEEDED means "furthest from the desired outcome" for both goal types,
// not literally past the target: a saving goal far below its target is
// EXCEEDED too.
type GoalStatus string

const (
	StatusSafe     GoalStatus = "SAFE"
	StatusWarning  GoalStatus = "WARNING"
	StatusExceeded GoalStatus = "EXCEEDED"
)

// ErrInvalidGoalTarget is returned by EvaluateGoalStatus for a non-positive
// target. Services must reject such targets before evaluating, so reaching
// this error indicates a caller bug.
var ErrInvalidGoalTarget = errors.New("goal target must be greater than zero")

// Goal is a saving target or spending limit tracked by a user.
type Goal struct {
	GoalID        string          `json:"goalID"`
	OwnerID       string          `json:"ownerID"`
	Title         string          `json:"title"`
	Type          GoalType        `json:"type"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Period        GoalPeriod      `json:"period"`
	// CategoryID is optional; empty means the goal is not scoped to a category.
	CategoryID string     `json:"categoryID,omitempty"`
	Status     GoalStatus `json:"status"`
	AuditFields
	Category *Category `json:"category,omitempty"`
}

var (
	hundred = decimal.NewFromInt(100)
	seventy = decimal.NewFromInt(70)
)

// EvaluateGoalStatus classifies a goal from its type and amounts.
// Progress is current/target*100. For SAVING goals progress >= 100 is SAFE,
// 70 <= progress < 100 is WARNING and anything below is EXCEEDED. For
// SPENDING_LIMIT goals progress <= 70 is SAFE, 70 < progress <= 100 is
// WARNING and anything above is EXCEEDED.
func EvaluateGoalStatus(goalType GoalType, current, target decimal.Decimal) (GoalStatus, error) {
	if target.LessThanOrEqual(decimal.Zero) {
		return "", ErrInvalidGoalTarget
	}

	progress := current.Div(target).Mul(hundred)

	switch goalType {
	case GoalSaving:
		if progress.GreaterThanOrEqual(hundred) {
			return StatusSafe, nil
		}
		if progress.GreaterThanOrEqual(seventy) {
			return StatusWarning, nil
		}
		return StatusExceeded, nil
	case GoalSpendingLimit:
		if progress.LessThanOrEqual(seventy) {
			return StatusSafe, nil
		}
		if progress.LessThanOrEqual(hundred) {
			return StatusWarning, nil
		}
		return StatusExceeded, nil
	default:
		return "", errors.New("unknown goal type: " + string(goalType))
	}
}
