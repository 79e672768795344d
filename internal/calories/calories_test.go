package calories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/adventofcode/internal/lines"
)

var example = lines.FromString(`1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`)

func TestTotals(t *testing.T) {
	got, err := Totals(example)
	require.NoError(t, err)
	assert.Equal(t, []int{6000, 4000, 11000, 24000, 10000}, got)
}

func TestParts(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, "24000", got)

	got, err = Part2(example)
	require.NoError(t, err)
	assert.Equal(t, "45000", got)
}

func TestTop_FewerThanN(t *testing.T) {
	assert.Equal(t, 7, Top([]int{3, 4}, 3))
	assert.Equal(t, 0, Top(nil, 3))
}

func TestTotals_SkipsEmptyGroups(t *testing.T) {
	got, err := Totals([]string{"1", "", "", "2", ""})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestTotals_Errors(t *testing.T) {
	_, err := Totals([]string{"100", "", "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")

	_, err = Totals(nil)
	assert.ErrorIs(t, err, ErrNoElves)

	_, err = Part2([]string{"", ""})
	assert.ErrorIs(t, err, ErrNoElves)
}
