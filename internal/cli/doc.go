// Package cli builds the gissy cobra command tree. The root command resolves
// the runtime context once in its pre-run hook; subcommands are thin wrappers
// around internal/actions.
package cli
