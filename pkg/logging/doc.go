// Package logging configures zerolog for cigen: console output on stderr and
// an append-only log file under the XDG state directory.
package logging
