package main

import (
	"fmt"
	"io"
	"log"

	"golang.org/x/net/context"

	"ownsum/seq"
)

const initialCapacity = 5

var initialValues = []int32{1, 2, 3, 4, 5}

// run builds the sequence, prints its sum through a borrowed view, then moves
// it to a second owner and prints the length. stdout receives exactly two lines.
func run(ctx context.Context, stdout io.Writer, logger *log.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	v := seq.WithCapacity(initialCapacity)
	v.Extend(initialValues...)
	logger.Printf("created sequence owner=%s len=%d cap=%d", v.ID(), v.Len(), v.Cap())

	var sum int32
	v.Borrow(func(view seq.View) {
		sum = view.Sum()
	})
	if _, err := fmt.Fprintf(stdout, "sum = %d\n", sum); err != nil {
		return fmt.Errorf("write sum: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// v is dead after this point
	v2 := v.Move()
	if _, err := fmt.Fprintf(stdout, "len = %d\n", v2.Len()); err != nil {
		return fmt.Errorf("write len: %w", err)
	}

	for _, event := range v2.History() {
		logger.Printf("history: %s", event)
	}
	return nil
}
