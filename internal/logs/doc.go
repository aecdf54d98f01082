// Package logs reads the host's log file for the `memorylane logs` command.
//
// Last reads the final N lines with bounded memory; Follow polls from an
// offset and hands new lines to a callback until the context ends.
package logs
