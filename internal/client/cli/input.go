package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for the x/term calls.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetMultiline prints a prompt to w and reads multiple lines until an empty
// line is entered (i.e., the user presses Enter twice). The trailing newline
// on each line is trimmed and the collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetNumber reads an integer in [lo, hi]. An empty answer returns def.
func GetNumber(reader *bufio.Reader, prompt string, w io.Writer, def, lo, hi int) (int, error) {
	for {
		text, err := GetSimpleText(reader, fmt.Sprintf("%s (%d-%d) [%d]", prompt, lo, hi, def), w)
		if err != nil {
			return 0, err
		}
		if text == "" {
			return def, nil
		}
		n, err := strconv.Atoi(text)
		if err == nil && n >= lo && n <= hi {
			return n, nil
		}
		fmt.Fprintf(w, "Please enter a number from %d to %d\n", lo, hi)
	}
}

// GetChoice lists options and returns the chosen one. The answer may be the
// option's number or its exact text; an empty answer returns def.
func GetChoice(reader *bufio.Reader, prompt string, w io.Writer, options []string, def string) (string, error) {
	for {
		fmt.Fprintln(w, prompt)
		for i, o := range options {
			fmt.Fprintf(w, "  %d) %s\n", i+1, o)
		}
		text, err := GetSimpleText(reader, fmt.Sprintf("Choose [%s]", def), w)
		if err != nil {
			return "", err
		}
		if text == "" {
			return def, nil
		}
		if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		for _, o := range options {
			if strings.EqualFold(o, text) {
				return o, nil
			}
		}
		fmt.Fprintln(w, "Unknown choice:", text)
	}
}

// promptConfirmer asks yes/no questions on the terminal.
type promptConfirmer struct {
	reader *bufio.Reader
	w      io.Writer
}

func (p promptConfirmer) Confirm(prompt string) bool {
	answer, err := GetSimpleText(p.reader, prompt+" [y/N]", p.w)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
