// Command jsengine runs the interactive menu described in spec.md §6: an
// out-of-scope external collaborator around the simulated JavaScript
// execution environment implemented by package jsengine.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dCdV47/JSEngine-Simulator"
)

func main() {
	eng, err := jsengine.New(
		jsengine.WithLogger(jsengine.NewDefaultLogger(jsengine.LevelInfo, os.Stdout)),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start engine:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go eng.Run(ctx)

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("\n[MAIN]: Choose an option (1: fetch-then, 2: dom-click, q: quit): ")
		b, err := reader.ReadByte()
		if err != nil {
			fmt.Println("\n[MAIN]: Shutdown initiated.")
			return
		}
		switch b {
		case '1':
			eng.SimulateFetchThen()
			time.Sleep(4 * time.Second)
		case '2':
			eng.SimulateDomClick()
			time.Sleep(1 * time.Second)
		case 'q', 'Q':
			fmt.Println("[MAIN]: Shutdown initiated.")
			return
		case '\n', '\r':
			// swallow the newline left by ReadByte's single-character reads
			continue
		default:
			fmt.Println("[MAIN]: Invalid option. Please try again.")
			time.Sleep(1 * time.Second)
		}
		drainLine(reader)
	}
}

// drainLine discards the remainder of the current input line, matching
// original_source/main.cpp's cin.ignore(...,'\n') so a multi-character
// line (e.g. "12\n") doesn't leave stray bytes to be misread as the next
// menu choice.
func drainLine(r *bufio.Reader) {
	for {
		b, err := r.ReadByte()
		if err != nil || b == '\n' {
			return
		}
	}
}
