// Package onboarding contains the built-in question modules of the life goal
// onboarding: personal habits, finances, business interests, life goals and
// the optional mindset track.
//
// Modules are plain graph.Module values built with the dsl package, so hosts
// can register them next to their own modules or override individual nodes
// by id.
package onboarding
