// Package testutil provides utilities for testing wieldy components.
//
// Tests run against an in-memory filesystem built with NewTestFS and
// populated with WriteFiles; test data is defined inline.
package testutil
