package main

import (
	"fmt"
	"os"

	"github.com/smt-joen/plunet2peppol/cmd/plunet2peppol/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
