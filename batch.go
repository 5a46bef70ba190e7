package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"calcterm/engine"
)

// BatchMode evaluates a file of expressions line by line against one
// session. Blank lines and '#' comments are skipped; the first evaluation
// error aborts with the offending line number.
func BatchMode(session *engine.Session, path string, verbose bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Mode directives let expression files switch interpretation
		// mid-stream, e.g. ":mode base"
		if strings.HasPrefix(line, ":mode ") {
			which := strings.TrimSpace(strings.TrimPrefix(line, ":mode "))
			setting, err := session.ToggleMode(which)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if verbose {
				fmt.Printf("# %s is now %s\n", which, setting)
			}
			continue
		}

		outcome, err := session.SubmitLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", lineNo, line, err)
		}

		if verbose {
			fmt.Printf("%s = %s\n", line, outcome.Display)
		} else {
			fmt.Println(outcome.Display)
		}
	}

	return scanner.Err()
}
