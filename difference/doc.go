// Package difference builds finite-difference reduction stacks of integer
// sequences.
//
// What:
//
//   - Difference maps a length-n sequence to its length n−1 first difference:
//     out[i] = in[i+1] − in[i].
//   - Reduce repeats Difference, starting from a private copy of the input,
//     until a level made only of zeros appears. That level is kept as the
//     terminal level of the Stack.
//
// Why:
//
//   - Any sequence sampled from a polynomial of degree k collapses to zeros
//     after k+1 differencing steps, so the stack exposes the structure needed
//     to extrapolate the sequence in either direction (see package extrapolate).
//
// Conventions:
//
//   - A length-1 sequence differences to an empty level; an empty level is
//     all-zero, so Reduce always terminates within len(h) steps.
//   - An input that is already all zeros yields a one-level Stack.
//   - Levels are never mutated after Reduce returns. Accessors hand out copies.
//
// Complexity:
//
//   - Difference: O(n) time, O(n) memory.
//   - Reduce:     O(n²) time and memory in the worst case (n levels).
//
// Errors:
//
//   - ErrEmptySequence: Reduce was given a zero-length history.
//   - ErrOverflow:      a difference does not fit in int64.
package difference
