//go:build !abdebug

package board

const debugChecks = false
