package main

import (
	"os"

	"pdf_extractor/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
