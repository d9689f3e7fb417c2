// Package utils provides common helpers shared by the formatters:
// record value parsing, tick conversion and compact number rendering.
package utils
