// Package chop implements the karate chop kata: a binary narrowing search
// over an ascending slice.
package chop

import "golang.org/x/exp/constraints"

// Chop returns the index of x in the ascending slice arr.
//
// When x is present the index of one of its occurrences is returned; with
// duplicates it is whichever occurrence the narrowing lands on. When x is
// absent the index of the largest element smaller than x is returned, or 0
// if there is none. An empty slice yields 0 without touching any element.
//
// The search keeps a half-open window [left, right) and halves it until it
// holds at most one index.
func Chop[T constraints.Ordered](x T, arr []T) int {
	left, right := 0, len(arr)
	for right-left > 1 {
		center := (left + right) / 2
		switch {
		case arr[center] > x:
			right = center
		case arr[center] < x:
			left = center
		default:
			return center
		}
	}
	return left
}

// Search is Chop plus a report of whether the returned index holds x.
// It tells a match at index 0 apart from an empty slice or a miss.
func Search[T constraints.Ordered](x T, arr []T) (int, bool) {
	i := Chop(x, arr)
	return i, i < len(arr) && arr[i] == x
}
