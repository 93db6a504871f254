// Package core implements the trust scoring pipeline: version classification,
// major grouping, pairwise compatibility aggregation and score blending.
package core
