// Package workspace implements the sandboxed workspace root that every
// file operation runs against.
//
// A Workspace owns a single canonical absolute root directory, fixed for the
// process lifetime. Every caller-supplied path is resolved against the root
// and verified to stay inside it:
//   - lexical containment check after join+clean
//   - symlink canonicalization of the resolved path, re-verified against the
//     canonical root
//
// The containment check is a security invariant, not optional hardening:
// no primitive in this package touches a path that has not passed Resolve.
//
// Primitives return typed errors (NotFoundError, WrongTypeError,
// AlreadyExistsError, RootDeletionError, DecodeError, IOError) so callers
// can surface a stable error kind without string matching.
package workspace
