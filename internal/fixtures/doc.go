// Package fixtures loads declarative test-vector suites for the path
// identifier encoding.
//
// A suite is a YAML document listing path vectors together with their
// expected textual and rational forms. Before a suite is handed to a
// test, it is validated against an embedded CUE schema, so malformed
// fixture files fail loudly with positions instead of producing
// confusing test output.
//
// fixtures is pure data: it imports no other internal package, so both
// the core library tests and the CLI tests can consume the same suites.
package fixtures
