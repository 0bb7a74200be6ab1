package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveOn(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveOn(t, "/items", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePagingExplicit(t *testing.T) {
	p := resolveOn(t, "/items?page=3&per_page=10", 20, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
}

func TestResolvePagingLimitAlias(t *testing.T) {
	p := resolveOn(t, "/items?limit=7", 20, 100)
	assert.Equal(t, 7, p.PerPage)
}

func TestResolvePagingClampsAndNormalizes(t *testing.T) {
	p := resolveOn(t, "/items?page=-5&per_page=9999", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)

	p = resolveOn(t, "/items?per_page=abc", 20, 100)
	assert.Equal(t, 20, p.PerPage)
}

func TestBuildPagination(t *testing.T) {
	pg := BuildPagination(45, 2, 20, 20)
	assert.Equal(t, int64(45), pg.Total)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	last := BuildPagination(45, 3, 20, 5)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := BuildPagination(0, 1, 20, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
