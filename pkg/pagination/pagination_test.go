package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		page, perPage int
		want          Params
	}{
		{1, 10, Params{1, 10}},
		{0, 0, Params{1, DefaultPerPage}},
		{-5, -1, Params{1, DefaultPerPage}},
		{3, 1000, Params{3, MaxPerPage}},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Normalize(c.page, c.perPage))
	}
}

func TestOffset(t *testing.T) {
	require.Equal(t, 0, Params{Page: 1, PerPage: 10}.Offset())
	require.Equal(t, 20, Params{Page: 3, PerPage: 10}.Offset())
}

func TestPages(t *testing.T) {
	require.Equal(t, 0, Pages(0, 10))
	require.Equal(t, 1, Pages(1, 10))
	require.Equal(t, 1, Pages(10, 10))
	require.Equal(t, 2, Pages(11, 10))
	require.Equal(t, 3, Pages(5, 2))
	require.Equal(t, 0, Pages(5, 0))
}
