//go:build unit

package readmodel_test

import (
	"testing"

	"storefront-api/internal/usecase/readmodel"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		count     int64
		wantPage  int
		wantPages int
	}{
		{name: "exact multiple", page: 1, limit: 5, count: 10, wantPage: 1, wantPages: 2},
		{name: "partial last page", page: 2, limit: 3, count: 7, wantPage: 2, wantPages: 3},
		{name: "empty result", page: 1, limit: 10, count: 0, wantPage: 1, wantPages: 0},
		{name: "zero limit clamps to one", page: 1, limit: 0, count: 4, wantPage: 1, wantPages: 4},
		{name: "negative limit clamps to one", page: 1, limit: -3, count: 2, wantPage: 1, wantPages: 2},
		{name: "zero page clamps to first", page: 0, limit: 10, count: 30, wantPage: 1, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []string{"a", "b"}
			p := readmodel.NewPage(items, tt.page, tt.limit, tt.count)

			assert.Equal(t, tt.wantPage, p.CurrentPage)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.count, p.Count)
			assert.Equal(t, items, p.Items)
		})
	}
}
