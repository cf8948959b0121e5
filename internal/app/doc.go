// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that turns level-order
// sequences into printed inorder traversals, decoupled from any specific
// entrypoint like a CLI.
package app
