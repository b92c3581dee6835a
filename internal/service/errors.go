package service

import "errors"

var (
	ErrInvalidBudget        = errors.New("budget must be a positive number")
	ErrNoAffordableProducts = errors.New("no products available within the given budget")
	ErrNoViableCombination  = errors.New("no viable product combination for the given budget")
)
