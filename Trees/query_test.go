package Trees

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkedBST_SuccessorPredecessor(t *testing.T) {
	tree := From[int, uint8]([]int{20, 10, 30})

	v, ok := tree.Successor(20)
	require.True(t, ok)
	require.Equal(t, 30, v)
	_, ok = tree.Successor(30)
	require.False(t, ok)
	_, ok = tree.Predecessor(10)
	require.False(t, ok)
	v, ok = tree.Predecessor(20)
	require.True(t, ok)
	require.Equal(t, 10, v)

	//absent query items
	v, ok = tree.Successor(15)
	require.True(t, ok)
	require.Equal(t, 20, v)
	v, ok = tree.Predecessor(25)
	require.True(t, ok)
	require.Equal(t, 20, v)
	v, ok = tree.Successor(-5)
	require.True(t, ok)
	require.Equal(t, 10, v)
	v, ok = tree.Predecessor(100)
	require.True(t, ok)
	require.Equal(t, 30, v)
}

func TestLinkedBST_PreSucc(t *testing.T) {
	content := make([]int, tAddN)
	for i := range content {
		content[i] = i * 2
	}
	shuffled := slices.Clone(content)
	rg.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	tree := From[int, uint16](shuffled)
	for i := 1; i < len(content)-1; i++ {
		a, ok := tree.Predecessor(content[i])
		require.True(t, ok)
		require.Equal(t, content[i-1], a)
		a, ok = tree.Successor(content[i])
		require.True(t, ok)
		require.Equal(t, content[i+1], a)
		a, _ = tree.Predecessor(content[i] + 1)
		require.Equal(t, content[i], a)
		a, _ = tree.Successor(content[i] - 1)
		require.Equal(t, content[i], a)
	}
	_, ok := tree.Predecessor(content[0])
	require.False(t, ok, "shouldn't have predecessor")
	_, ok = tree.Successor(content[len(content)-1])
	require.False(t, ok, "shouldn't have successor")
}

func TestLinkedBST_MinMax(t *testing.T) {
	tree := sample()
	v, ok := tree.Minimum()
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = tree.Maximum()
	require.True(t, ok)
	require.Equal(t, 9, v)
}

func TestLinkedBST_RangeFind(t *testing.T) {
	tree := sample()
	require.Equal(t, []int{3, 4, 5}, tree.RangeFind(2, 6))
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.RangeFind(0, 100))
	require.Equal(t, []int{4}, tree.RangeFind(4, 4))
	require.Empty(t, tree.RangeFind(6, 6))
	require.Empty(t, tree.RangeFind(8, 3))
	require.Empty(t, tree.RangeFind(10, 20))
	require.Empty(t, New[int, uint](0).RangeFind(0, 1))
}

func TestLinkedBST_RangeFindRandom(t *testing.T) {
	tree := New[int, uint16](tAddN)
	for range tAddN {
		tree.Add(rg.Intn(tAddValRange))
	}
	all := tree.Values()
	for range 200 {
		low, high := rg.Intn(tAddValRange+20)-10, rg.Intn(tAddValRange+20)-10
		if low > high {
			low, high = high, low
		}
		var want []int
		for _, v := range all {
			if low <= v && v <= high {
				want = append(want, v)
			}
		}
		require.Equal(t, want, tree.RangeFind(low, high), "range [%d, %d]", low, high)
	}
}
