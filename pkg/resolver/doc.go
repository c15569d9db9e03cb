// Package resolver matches loose version specifiers ("latest", "11",
// "11.2", "11.2.0") against the discovered version catalog.
package resolver
