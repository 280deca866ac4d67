package main

import (
	"blockvault/cmd"
	"fmt"
	"os"
)

func main() {
	if err := cmd.Start(os.Args[1:]); err != nil {
		fmt.Printf("blockvault run into an error: %s\n", err)
		os.Exit(1)
	}
}
