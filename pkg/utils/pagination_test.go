package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/?page=2&size=25", nil)
	p := GetPaginationParams(e.NewContext(req, httptest.NewRecorder()))
	assert.Equal(t, PaginationParams{Page: 2, PageSize: 25, Offset: 50}, p)

	req = httptest.NewRequest(http.MethodGet, "/?page=-3&size=1000", nil)
	p = GetPaginationParams(e.NewContext(req, httptest.NewRecorder()))
	assert.Equal(t, PaginationParams{Page: 0, PageSize: DefaultPageSize, Offset: 0}, p)
}

func TestPaginateCoversEveryItemExactlyOnce(t *testing.T) {
	for _, n := range []int{0, 1, 7, 10, 23} {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		for _, size := range []int{1, 3, 10} {
			var joined []int
			pages := TotalPages(int64(n), size)
			for page := 0; page < pages; page++ {
				joined = append(joined, Paginate(items, NewPaginationParams(page, size))...)
			}
			assert.Equal(t, len(items), len(joined), "n=%d size=%d", n, size)
			for i := range joined {
				assert.Equal(t, i, joined[i])
			}

			beyond := Paginate(items, NewPaginationParams(pages, size))
			assert.NotNil(t, beyond)
			assert.Empty(t, beyond)
			assert.Empty(t, Paginate(items, NewPaginationParams(pages+5, size)))
		}
	}
}

func TestPaginateHugePageIndexIsEmpty(t *testing.T) {
	p := NewPaginationParams(922337203685477581, 10)
	assert.GreaterOrEqual(t, p.Offset, 0)

	assert.NotPanics(t, func() {
		page := Paginate([]int{1, 2, 3}, p)
		assert.NotNil(t, page)
		assert.Empty(t, page)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?page=9223372036854775807&size=100", nil)
	p = GetPaginationParams(e.NewContext(req, httptest.NewRecorder()))
	assert.Equal(t, math.MaxInt/100, p.Page)
	assert.GreaterOrEqual(t, p.Offset, 0)
	assert.Empty(t, Paginate([]int{1, 2, 3}, p))

	assert.Empty(t, Paginate([]int{1, 2, 3}, PaginationParams{Page: 1, PageSize: 10, Offset: -10}))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}
