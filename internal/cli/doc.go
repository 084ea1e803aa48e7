// Package cli parses command-line arguments into an app.Config. It owns
// the flag surface and usage text; everything after parsing belongs to the
// app package.
package cli
