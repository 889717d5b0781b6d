package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/shohamc1/mxbmm/cmd/mxbmm"
	"github.com/shohamc1/mxbmm/internal/version"
)

func main() {
	rootCmd := mxbmm.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MXBMM",
		Section: "1",
		Source:  "mxbmm " + version.Version,
		Manual:  "mxbmm manual",
	}

	if err := doc.GenManTree(rootCmd, header, manDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
		os.Exit(1)
	}
}

// manDir is the output directory, the first argument or ./man.
func manDir() string {
	dir := "man"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}
	return dir
}
