// Package types holds the option and action types shared by find's parser
// and its walker. Keeping them here avoids an import cycle between the two.
package types

// Options represents the find command's traversal options. It is built once
// from the argument vector and immutable thereafter.
type Options struct {
	// Mindepth is the inclusive lower bound on the depth, from the search
	// root, at which an entry may be reported as a match. It gates
	// matching only, never traversal. -1 means unset.
	Mindepth int
	// Maxdepth is the inclusive upper bound on traversal depth. Entries
	// beyond it are neither visited nor recursed into. -1 means unset.
	Maxdepth int
	// Help is set when the user requested the usage listing.
	Help bool
}

// NewOptions creates an Options with both depth bounds unset.
func NewOptions() Options {
	return Options{Mindepth: -1, Maxdepth: -1}
}
