package main

import (
	"fmt"
	"os"

	"github.com/porkbrain/harriet-vision/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
