package gridgraph

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func TestParseText(t *testing.T) {
	g, err := ParseText(stringsReader("\n  .#.\n010\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, []bool{false, true, false, false, true, false}, g.Occupancy())
	assert.Equal(t, ".#.\n.#.\n", g.String())
}

func TestParseText_Errors(t *testing.T) {
	_, err := ParseText(stringsReader(""))
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = ParseText(stringsReader("..\n.\n"))
	assert.ErrorIs(t, err, ErrNonRectangular)

	_, err = ParseText(stringsReader("..\n.x\n"))
	require.ErrorIs(t, err, ErrBadCell)
	assert.Contains(t, err.Error(), "line 2 column 2")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestParseText_ReadError(t *testing.T) {
	_, err := ParseText(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}
