package dataset

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVTypeDetection(t *testing.T) {
	in := strings.NewReader("Age,Gender,Weight\n30,Male,85.5\n60,Female,\n")
	tbl, err := ReadCSV(in)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, []string{"Age", "Gender", "Weight"}, tbl.Columns())

	age, ok := tbl.Num("Age")
	require.True(t, ok)
	assert.Equal(t, []float64{30, 60}, age)

	gender, ok := tbl.Text("Gender")
	require.True(t, ok)
	assert.Equal(t, []string{"Male", "Female"}, gender)

	// Empty numeric cells become NaN, not zero.
	weight, ok := tbl.Num("Weight")
	require.True(t, ok)
	assert.InDelta(t, 85.5, weight[0], 0.001)
	assert.True(t, math.IsNaN(weight[1]))
}

func TestReadCSVMixedColumnIsText(t *testing.T) {
	in := strings.NewReader("Code\n12\nabc\n")
	tbl, err := ReadCSV(in)
	require.NoError(t, err)

	_, ok := tbl.Num("Code")
	assert.False(t, ok)
	code, ok := tbl.Text("Code")
	require.True(t, ok)
	assert.Equal(t, []string{"12", "abc"}, code)
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoColumns)
}

func TestAddColumnErrors(t *testing.T) {
	tbl := NewTable(2)
	require.NoError(t, tbl.AddNum("a", []float64{1, 2}))

	assert.ErrorIs(t, tbl.AddNum("a", []float64{3, 4}), ErrColumnExists)
	assert.ErrorIs(t, tbl.AddText("a", []string{"x", "y"}), ErrColumnExists)
	assert.ErrorIs(t, tbl.AddNum("b", []float64{1}), ErrLengthMismatch)
}

func TestMeanSkipsNaN(t *testing.T) {
	tbl := NewTable(3)
	require.NoError(t, tbl.AddNum("v", []float64{10, math.NaN(), 20}))

	mean, ok := tbl.Mean("v")
	require.True(t, ok)
	assert.InDelta(t, 15, mean, 0.001)

	require.NoError(t, tbl.AddNum("empty", []float64{math.NaN(), math.NaN(), math.NaN()}))
	_, ok = tbl.Mean("empty")
	assert.False(t, ok)

	_, ok = tbl.Mean("missing")
	assert.False(t, ok)
}

func TestSortByNumReordersAllColumns(t *testing.T) {
	tbl := NewTable(3)
	require.NoError(t, tbl.AddNum("ID", []float64{3, 1, 2}))
	require.NoError(t, tbl.AddText("Name", []string{"c", "a", "b"}))

	tbl.SortByNum("ID")

	id, _ := tbl.Num("ID")
	name, _ := tbl.Text("Name")
	assert.Equal(t, []float64{1, 2, 3}, id)
	assert.Equal(t, []string{"a", "b", "c"}, name)
}

func TestSortByNumNaNFirst(t *testing.T) {
	tbl := NewTable(3)
	require.NoError(t, tbl.AddNum("ID", []float64{2, math.NaN(), 1}))

	tbl.SortByNum("ID")

	id, _ := tbl.Num("ID")
	assert.True(t, math.IsNaN(id[0]))
	assert.Equal(t, []float64{1, 2}, id[1:])
}

func TestWriteCSVRoundTrip(t *testing.T) {
	tbl := NewTable(2)
	require.NoError(t, tbl.AddNum("Age", []float64{30, math.NaN()}))
	require.NoError(t, tbl.AddText("Gender", []string{"Male", "Female"}))

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns(), back.Columns())

	age, _ := back.Num("Age")
	assert.InDelta(t, 30, age[0], 0.001)
	assert.True(t, math.IsNaN(age[1]))
}
