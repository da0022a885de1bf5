package validators

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReAsksUntilNonEmpty(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n\nFigge\n"), &out)

	answer, err := p.Line("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Figge", answer)
	assert.Contains(t, out.String(), "can not be blank")
}

func TestDigitsRejectsLetters(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n070123\n"), &out)

	answer, err := p.Digits("Phone: ")
	require.NoError(t, err)
	assert.Equal(t, "070123", answer)
	assert.Contains(t, out.String(), "only contain digits")
}

func TestPriceParsesAndRounds(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("not a price\n119,999\n"), &out)

	price, err := p.Price("Price: ")
	require.NoError(t, err)
	assert.Equal(t, 120.0, price)
}

func TestDateRequiresTenCharacters(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("2024-1-1\n2024-01-01\n"), &out)

	date, err := p.Date("Date: ")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", date)
}

func TestChoiceReturnsOneBasedIndex(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("9\nx\n2\n"), &out)

	n, err := p.Choice("Choose a category:", []string{"Side", "Main", "Beverage"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, out.String(), "1. Side")
	assert.Contains(t, out.String(), "Invalid option, try again")
}

func TestEOFSurfaces(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), io.Discard)

	_, err := p.Line("Name: ")
	assert.ErrorIs(t, err, io.EOF)
}
