// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the generation pipeline (load, validate,
// build the function table, render, write), decoupled from any specific
// entrypoint like a CLI.
package app
