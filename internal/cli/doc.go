// Package cli is responsible for parsing command-line arguments, layering
// flags, environment variables, and the optional config file, and handling
// process-level concerns like exit codes. It translates that input into the
// application's internal configuration.
package cli
