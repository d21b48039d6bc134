// Package partition implements stable partitioning in constant extra space.
//
// Every algorithm takes a half-open range [first, last) of cursors and a
// predicate. It reorders the range so that the elements satisfying the
// predicate come first, then the ones that do not, keeping the relative
// order inside each group. The returned cursor is the start of the second
// group. No algorithm allocates memory proportional to the range length.
//
// The algorithms differ in what they ask of the cursor and in how they spend
// predicate calls and swaps:
//
//   - Recursive splits the range in half, partitions both halves and rotates
//     the two middle runs together. Random access, O(n log n).
//   - BottomUp does the same merges iteratively with doubling block widths
//     and finds each block's boundary by a linear scan. Bidirectional,
//     O(n log n).
//   - BSearch is BottomUp with the boundaries found by binary search, which
//     cuts predicate calls to O(n) overall. Random access.
//   - Natural repeatedly sweeps the range and moves every run of matching
//     elements ahead of the run of non-matching elements before it, until a
//     sweep changes nothing. Bidirectional. Close to linear when the input
//     is already mostly partitioned or made of long runs, quadratic on
//     alternating input.
//
// Recursive, BSearch and PartitionPoint also come in Bidi forms for
// bidirectional-only cursors such as cursor.List. They give the same results
// and predicate call counts, but walk to every split point instead of
// jumping.
//
// Each algorithm also has an N form taking a start cursor and an element
// count of any integer type. The count type is used for all internal block
// arithmetic and is safe up to its maximum value.
//
// The predicate must return the same result for the same element value. It
// may be called more than once per element. The range must be valid for the
// cursor type; neither condition is checked.
package partition
