// Package driving defines the interfaces external actors use to drive
// the core: the CLI commands and the interactive shell.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
package driving
