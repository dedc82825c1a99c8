package main

import (
	"fmt"
	"os"

	"github.com/kurtisc/bit-rotate/cmd/rotate"
)

func main() {
	if err := rotate.Cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "rotate:", err)
		os.Exit(1)
	}
}
