package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "sekolahku_backend/internals/helpers"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"SMA Negeri 1 Bandung", "sma-negeri-1-bandung"},
		{"  trims  --  dashes  ", "trims-dashes"},
		{"UPPER & lower!!", "upper-lower"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, helper.GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := helper.BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = helper.BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)

	// zero guards fall back to sane defaults
	p = helper.BuildPaginationFromPage(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}
