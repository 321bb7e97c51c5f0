package classes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AybarsKansu/image-labeling/internal/annotation"
)

func TestBuildRemap(t *testing.T) {
	rm := BuildRemap([][]string{
		{"car", "Dog"},
		{"DOG", "cat"},
	})

	require.Equal(t, []string{"car", "dog", "cat"}, rm.Unified)
	require.Equal(t, []int{0, 1}, rm.Tables[0])
	require.Equal(t, []int{1, 2}, rm.Tables[1])
}

func TestBuildRemapSingleSource(t *testing.T) {
	rm := BuildRemap([][]string{{"a", "b", "c"}})
	require.Equal(t, []string{"a", "b", "c"}, rm.Unified)
	require.Equal(t, []int{0, 1, 2}, rm.Tables[0])
}

func TestRemapApply(t *testing.T) {
	rm := BuildRemap([][]string{
		{"car", "dog"},
		{"dog", "cat"},
	})

	rec := &annotation.LabelRecord{
		Entries: []annotation.Entry{
			{ClassID: 0, Points: []float64{0, 0, 1, 0, 1, 1}},
			{ClassID: 1, Points: []float64{0, 0, 1, 0, 0, 1}},
			{ClassID: 9, Points: []float64{0, 0, 1, 0, 0, 1}}, // stale id, dropped
		},
	}
	rm.Apply(rec, 1)

	require.Len(t, rec.Entries, 2)
	require.Equal(t, 1, rec.Entries[0].ClassID) // dog
	require.Equal(t, 2, rec.Entries[1].ClassID) // cat
}
