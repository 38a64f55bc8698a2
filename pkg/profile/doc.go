// Package profile derives a UserProfile from a final answer snapshot.
//
// Rules is the in-process classifier: a set of ordered rule tables that map
// answers to classifications, suggestions and recommendations. Engine wraps
// any ports.Classifier with input checks, panic recovery and error wrapping,
// and Guard adds per-session reentrancy protection on top of it.
package profile
