// Package render writes resolution orders, dependency trees, and check results
// to a writer in one of the supported output formats.
package render
