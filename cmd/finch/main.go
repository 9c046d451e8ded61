// Package main provides the Finch CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/finch-quant/finch/calendars"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Finch %s\n", version)
			return
		case "calendars":
			fmt.Printf("Named calendars: %s\n", strings.Join(calendars.Names(), ", "))
			fmt.Println("Combine with commas, add settlement with a pipe: ldn,tgt or tgt|nyc")
			return
		}
	}

	fmt.Println("Finch - Fixed Income Analytics for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version      Show version")
	fmt.Println("  calendars    List named holiday calendars")
}
