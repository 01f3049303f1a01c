package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// FindIndexFunc returns the index of the first element satisfying pred, or -1.
func FindIndexFunc[T any](slice []T, pred func(T) bool) int {
	for i, v := range slice {
		if pred(v) {
			return i
		}
	}
	return -1
}

func Sum[T constraints.Integer](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Xor folds values with bitwise exclusive or.
func Xor[T constraints.Integer](values []T) T {
	var x T
	for _, v := range values {
		x ^= v
	}
	return x
}
