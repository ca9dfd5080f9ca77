// Package grid treats a text maze as a 2D grid of bytes, exposing the
// bounds-checked openness queries the traversal packages walk over.
//
// What:
//
//   - Grid holds one []byte per input line; rows may differ in length,
//     the column count is measured from the first row. Bytes are kept
//     as read, so non-UTF-8 input renders back byte for byte.
//   - Locates the start ('S') and end ('E') markers while parsing.
//   - Marks a found Path with a marker byte and renders back to text.
//
// Cells:
//
//	'#'        wall
//	' ' or '.' empty passage (the only cells MarkPath overwrites)
//	'S', 'E'   start and end (open)
//	anything   open terrain
//
// Complexity:
//
//   - Parse:    O(R×C) time and memory.
//   - IsOpen:   O(1).
//   - MarkPath: O(len(path)).
//   - Render:   O(R×C).
//
// Errors:
//
//   - ErrMissingStart / ErrMissingEnd: the marker does not appear in bounds.
//   - ErrDuplicateMarker: a marker appears more than once.
//   - ErrRead / ErrWrite: wrap the underlying file-system error.
package grid
