// Package logx is a minimal verbosity-gated logger: Printf and Println
// are no-ops unless the Logger was built with verbose output enabled.
package logx
