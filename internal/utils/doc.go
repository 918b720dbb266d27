// Package utils provides small helpers shared by the command layer: reading
// a message from stdin, opening a browser and slice helpers.
package utils
