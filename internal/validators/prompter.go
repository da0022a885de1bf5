package validators

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Prompter reads line-oriented input, re-asking until the answer passes
// the field's validation. Returns io.EOF once the input runs dry.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) read() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Raw asks once and returns whatever was typed, possibly empty.
func (p *Prompter) Raw(label string) (string, error) {
	fmt.Fprint(p.out, label)
	return p.read()
}

// Line asks until the answer is non-empty.
func (p *Prompter) Line(label string) (string, error) {
	for {
		answer, err := p.Raw(label)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintln(p.out, "This field can not be blank, please provide a valid input")
	}
}

// Digits asks until the answer contains digits only.
func (p *Prompter) Digits(label string) (string, error) {
	for {
		answer, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if isDigits(answer) {
			return answer, nil
		}
		fmt.Fprintln(p.out, "This field may only contain digits, please provide a valid number")
	}
}

// Price asks until the answer parses as a number, rounded to two decimals.
func (p *Prompter) Price(label string) (float64, error) {
	for {
		answer, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		answer = strings.ReplaceAll(answer, ",", ".")
		if v, err := strconv.ParseFloat(answer, 64); err == nil {
			return math.Round(v*100) / 100, nil
		}
		fmt.Fprintln(p.out, "This field may only contain digits and (,). Please provide a valid price")
	}
}

// Date asks until the answer is a 10-character date like 2024-12-31.
func (p *Prompter) Date(label string) (string, error) {
	for {
		answer, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if len(answer) == 10 {
			return answer, nil
		}
		fmt.Fprintln(p.out, "Please enter a valid date (example: 2024-12-31)")
	}
}

// Choice prints a numbered option list and asks until one is picked.
// The result is 1-based.
func (p *Prompter) Choice(label string, options []string) (int, error) {
	fmt.Fprintln(p.out, label)
	for i, opt := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, opt)
	}

	for {
		answer, err := p.Raw("")
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return n, nil
		}
		fmt.Fprintln(p.out, "Invalid option, try again")
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
