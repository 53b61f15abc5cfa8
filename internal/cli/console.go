package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// console separates input collection from the mutation logic: commands
// gather answers up front and hand the service layer plain values.
type console struct {
	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

func newConsole(stdin io.Reader, stdout, stderr io.Writer) *console {
	return &console{
		in:  bufio.NewReader(stdin),
		out: stdout,
		err: stderr,
	}
}

// prompt prints the question and reads one trimmed line from stdin. EOF with
// a partial line is treated as an answer.
func (c *console) prompt(question string) (string, error) {
	fmt.Fprintln(c.out, question)

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *console) errorf(format string, args ...any) {
	fmt.Fprintf(c.err, format, args...)
}
