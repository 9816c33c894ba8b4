// Package errs provides the standardized error taxonomy of the marketplace
// backend. Every error produced by the core unwraps to one of six sentinel
// errors, which keeps classification at the HTTP boundary a flat errors.Is
// dispatch:
//
//   - ErrValueIsRequired / ErrValueIsInvalid: malformed or missing input
//   - ErrObjectNotFound: target id absent
//   - ErrConflict: duplicate unique key (e.g. phone already registered)
//   - ErrAccessForbidden: actor lacks rights over the target
//   - ErrNotAuthenticated: no resolved actor or bad credentials
//
// Each error type follows the same pattern: a sentinel variable, a struct
// with detail fields, constructors with and without a cause, an Error()
// formatter and an Unwrap() pointing at the sentinel. Storage failures are
// not part of the taxonomy; they are wrapped at the adapter level and map
// to a generic 500 with diagnostic detail kept in operator logs.
package errs
