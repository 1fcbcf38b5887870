// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the command lifecycle (load manifests, build
// the topology, resolve it, render the result), decoupled from any specific
// entrypoint like a CLI.
package app
