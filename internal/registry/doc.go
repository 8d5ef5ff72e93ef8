// Package registry maps a (day, part) key to the Go function that solves it.
//
// Every day package exposes a Module that registers its solvers. The app
// registers all modules at startup and validates that every requested
// puzzle has a solver before any job runs.
package registry
