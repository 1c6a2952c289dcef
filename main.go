package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/net/context"
)

func main() {

	verbose := flag.Bool("verbose", false, "Log the sequence's ownership history to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s: %s\n", os.Args[0], "sums the sequence 1..5, then moves it to a new owner")
		flag.PrintDefaults() // Print the default flag descriptions
	}

	flag.Parse()

	logger := log.New(io.Discard, "", log.LstdFlags)
	if *verbose {
		logger.SetOutput(os.Stderr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, os.Stdout, logger); err != nil {
		log.Fatalf("Failed to run: %v", err)
	}
}
