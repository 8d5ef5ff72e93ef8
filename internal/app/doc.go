// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (a single puzzle, a
// manifest batch or the solver listing), decoupled from any specific
// entrypoint like a CLI.
package app
