package main

import (
	"fmt"
	"os"

	"github.com/shohamc1/mxbmm/cmd/mxbmm"
	"github.com/shohamc1/mxbmm/pkg/style"
)

func main() {
	rootCmd := mxbmm.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Error(err))
		os.Exit(1)
	}
}
