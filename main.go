package main

import (
	"os"

	"github.com/awpl-blog/blogsite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
