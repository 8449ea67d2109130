package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name           string
		itemCount      int
		pageSize       int
		index          int
		expectedTotal  int
		expectedIndex  int
		expectedLen    int
		expectedFirst  int
		expectedPrev   bool
		expectedNext   bool
	}{
		{
			name:          "first of three pages",
			itemCount:     12,
			pageSize:      5,
			index:         0,
			expectedTotal: 3,
			expectedIndex: 0,
			expectedLen:   5,
			expectedFirst: 0,
			expectedPrev:  false,
			expectedNext:  true,
		},
		{
			name:          "middle page",
			itemCount:     12,
			pageSize:      5,
			index:         1,
			expectedTotal: 3,
			expectedIndex: 1,
			expectedLen:   5,
			expectedFirst: 5,
			expectedPrev:  true,
			expectedNext:  true,
		},
		{
			name:          "short last page",
			itemCount:     12,
			pageSize:      5,
			index:         2,
			expectedTotal: 3,
			expectedIndex: 2,
			expectedLen:   2,
			expectedFirst: 10,
			expectedPrev:  true,
			expectedNext:  false,
		},
		{
			name:          "exact multiple of page size",
			itemCount:     10,
			pageSize:      5,
			index:         1,
			expectedTotal: 2,
			expectedIndex: 1,
			expectedLen:   5,
			expectedFirst: 5,
			expectedPrev:  true,
			expectedNext:  false,
		},
		{
			name:          "index past the end clamps to last page",
			itemCount:     12,
			pageSize:      5,
			index:         99,
			expectedTotal: 3,
			expectedIndex: 2,
			expectedLen:   2,
			expectedFirst: 10,
			expectedPrev:  true,
			expectedNext:  false,
		},
		{
			name:          "negative index clamps to first page",
			itemCount:     12,
			pageSize:      5,
			index:         -3,
			expectedTotal: 3,
			expectedIndex: 0,
			expectedLen:   5,
			expectedFirst: 0,
			expectedPrev:  false,
			expectedNext:  true,
		},
		{
			name:          "empty sequence still has one page",
			itemCount:     0,
			pageSize:      5,
			index:         0,
			expectedTotal: 1,
			expectedIndex: 0,
			expectedLen:   0,
			expectedPrev:  false,
			expectedNext:  false,
		},
		{
			name:          "empty sequence with out-of-range index",
			itemCount:     0,
			pageSize:      5,
			index:         7,
			expectedTotal: 1,
			expectedIndex: 0,
			expectedLen:   0,
			expectedPrev:  false,
			expectedNext:  false,
		},
		{
			name:          "page size below one is treated as one",
			itemCount:     3,
			pageSize:      0,
			index:         1,
			expectedTotal: 3,
			expectedIndex: 1,
			expectedLen:   1,
			expectedFirst: 1,
			expectedPrev:  true,
			expectedNext:  true,
		},
		{
			name:          "single item single page",
			itemCount:     1,
			pageSize:      5,
			index:         0,
			expectedTotal: 1,
			expectedIndex: 0,
			expectedLen:   1,
			expectedFirst: 0,
			expectedPrev:  false,
			expectedNext:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, tt.itemCount)
			for i := range items {
				items[i] = i
			}

			page := Paginate(items, tt.pageSize, tt.index)

			assert.Equal(t, tt.expectedTotal, page.TotalPages)
			assert.Equal(t, tt.expectedIndex, page.Index)
			assert.Len(t, page.Items, tt.expectedLen)
			assert.Equal(t, tt.expectedPrev, page.HasPrev)
			assert.Equal(t, tt.expectedNext, page.HasNext)

			if tt.expectedLen > 0 {
				assert.Equal(t, tt.expectedFirst, page.Items[0])
			}
		})
	}
}

func TestPaginate_Deterministic(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	first := Paginate(items, 3, 1)
	second := Paginate(items, 3, 1)

	assert.Equal(t, first, second)
}
