// Package caverns surveys a finished cave grid as a graph of open cells.
//
// What:
//
//   - Map wraps a *cave.Grid with a chosen Connectivity.
//   - Regions lists the contiguous open areas ("caverns").
//   - Survey summarizes wall/open counts, region count and largest region.
//
// The analysis is read-only: nothing is carved, filled or merged, so
// regions may stay disconnected.
//
// Complexity:
//
//   - Regions: O(N²·d), Memory: O(N²)    (d = number of neighbors, 4 or 8).
//   - Survey:  O(N²·d).
//
// Options:
//
//   - Options.Conn: Conn4 (4-neighbors, default) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrNilGrid: New received a nil grid.
//   - ErrRegionIndex: requested region index out of range.
package caverns
