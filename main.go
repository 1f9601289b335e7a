/*
File    : loxgm/main.go
*/

package main

import (
	"fmt"
	"os"

	cmd "github.com/loxgm/loxgm/cmd/loxgm"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
