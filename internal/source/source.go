// Package source acquires the raw bindkey listing, either from a file
// or stdin, or by asking zsh directly.
package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Lines returns the raw listing lines. An empty path means ask zsh;
// "-" means read stdin; anything else is a file path.
func Lines(path string) ([]string, error) {
	if path == "" {
		return FromZsh()
	}
	return ReadFile(path)
}

// ReadFile reads listing lines from a file, or from stdin when path
// is "-". Each line is stripped of surrounding whitespace.
func ReadFile(path string) ([]string, error) {
	if path == "-" {
		return readLines(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// FromZsh runs an interactive login zsh and captures its key-binding
// table. Interactive login mode makes zsh source the user's startup
// files, so the dump reflects their real configuration.
func FromZsh() ([]string, error) {
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		return nil, fmt.Errorf("zsh not found on PATH: %w", err)
	}

	var out, errOut bytes.Buffer
	cmd := exec.Command(zsh, "--login", "--interactive", "-c", "bindkey -L")
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(errOut.String()); msg != "" {
			return nil, fmt.Errorf("running bindkey: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("running bindkey: %w", err)
	}
	return readLines(&out)
}
