// Command bezexport writes the Bézier curves of a scene document in the
// nested-array format read by the renderer.
//
// Usage:
//
//	bezexport export [-o out.txt] [-f format] [scene.yaml]
//	bezexport bounds [-f format] [scene.yaml]
//
// Scene documents are described in package scene. Without a file argument,
// a YAML document is read from standard input.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
