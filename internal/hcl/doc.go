// Package hcl provides the HCL implementation of the config.Loader interface.
// It parses `item` blocks and resolves their `depends_on` lists, which may mix
// plain strings with `item.<name>` references.
package hcl
