// Package lineup seats team members in a dragon boat.
//
// It is a deterministic greedy heuristic, not an optimal solver: locked
// seats are copied in first, the drummer and steerer seats are filled
// from the eligible members, and the remaining paddlers are placed one
// at a time, heaviest first, into the free seat with the best Score.
//
// Every function here is pure with respect to its inputs: boats and lock
// maps are copied before being changed and nothing performs I/O.
package lineup
