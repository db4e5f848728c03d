// Package services implements the driving port interfaces.
// Services contain the core catalog logic and orchestrate
// calls to driven ports (adapters).
//
// Catalog queries are synchronous and side-effect free. Filter and view
// state are per-session handles; only the delayed selection commit of a
// ViewState runs on its own goroutine.
package services
