package mapper

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type inner struct {
	Shared string
	Deep   int `sjson:"deep,omitempty"`
}

type Exported struct {
	Promoted bool
}

type outer struct {
	Name    string `sjson:"name"`
	Shared  string
	Skip    string `sjson:"-"`
	private int
	inner
	*Exported
}

func TestFields(t *testing.T) {
	fields := Fields(reflect.TypeOf(outer{}))

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	require.Equal(t, []string{"name", "Shared", "deep", "Promoted"}, names)

	require.True(t, fields[0].Tagged)
	require.Equal(t, []int{1}, fields[1].Index, "the outer field hides inner.Shared")
	require.Equal(t, []int{4, 1}, fields[2].Index)
	require.True(t, fields[2].OmitEmpty)
	require.Equal(t, []int{5, 0}, fields[3].Index)

	again := Fields(reflect.TypeOf(outer{}))
	require.Equal(t, fields, again, "results are cached per type")
}

func TestLookup(t *testing.T) {
	f, ok := Lookup(reflect.TypeOf(outer{}), "deep")
	require.True(t, ok)
	require.Equal(t, []int{4, 1}, f.Index)

	_, ok = Lookup(reflect.TypeOf(outer{}), "Skip")
	require.False(t, ok)
	_, ok = Lookup(reflect.TypeOf(outer{}), "private")
	require.False(t, ok)
}

func TestByIndex(t *testing.T) {
	var o outer
	rv := reflect.ValueOf(&o).Elem()

	_, ok := ByIndex(rv, []int{5, 0}, false)
	require.False(t, ok, "a nil embedded pointer is not allocated without alloc")
	require.Nil(t, o.Exported)

	fv, ok := ByIndex(rv, []int{5, 0}, true)
	require.True(t, ok)
	fv.SetBool(true)
	require.NotNil(t, o.Exported)
	require.True(t, o.Promoted)

	fv, ok = ByIndex(rv, []int{4, 1}, false)
	require.True(t, ok)
	fv.SetInt(7)
	require.Equal(t, 7, o.inner.Deep)
}

func TestIsEmpty(t *testing.T) {
	var nilPtr *int
	tests := []struct {
		value any
		empty bool
	}{
		{"", true},
		{"x", false},
		{0, true},
		{uint(1), false},
		{0.0, true},
		{false, true},
		{[]int{}, true},
		{map[string]int{"a": 1}, false},
		{nilPtr, true},
		{struct{}{}, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.empty, IsEmpty(reflect.ValueOf(tt.value)), "%#v", tt.value)
	}
}
