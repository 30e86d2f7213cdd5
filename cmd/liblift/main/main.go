package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/liblift/cmd/liblift"
	"github.com/arthur-debert/liblift/pkg/style"
)

func main() {
	rootCmd := liblift.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		msg := fmt.Sprintf("Error: %v", err)
		if style.Plain() {
			fmt.Fprintln(os.Stderr, msg)
		} else {
			fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(msg))
		}
		os.Exit(1)
	}
}
