package table

import (
	"bufio"
	"io"
)

// IO is a line oriented conversation with the people at the table.
type IO interface {
	io.Writer
	ReadLine() (string, error)
}

// ChoiceReader is implemented by front ends that can offer hit and stand as
// buttons instead of free text.
type ChoiceReader interface {
	ReadChoice() (string, error)
}

type Console struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(r),
		w:       w,
	}
}

func (c *Console) ReadLine() (string, error) {
	if c.scanner.Scan() {
		return c.scanner.Text(), nil
	}
	if err := c.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (c *Console) Write(p []byte) (int, error) {
	return c.w.Write(p)
}
