// Package puzzle models a crossword grid under construction.
//
// A Grid is an N×N matrix of Squares whose black/white pattern is kept
// invariant under 90° rotation about the grid centre: every Toggle writes the
// new state to the target cell and its three rotational images.
//
// ExtractClues scans the grid in row-major order, numbers the squares that
// start a word and returns the across and down clues. The scan decides word
// starts from blank-ness of the neighbouring cell, so it is meant to run
// before letters are placed; re-running it on a filled grid drops the words
// whose second cell already holds a letter.
package puzzle
