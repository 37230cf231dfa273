package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix string
	}{
		{"普通名称", "Best Sci-Fi Movies", "best-sci-fi-movies-"},
		{"特殊字符", "Top 10: Horror!!!", "top-10-horror-"},
		{"多余空白", "  spaced   out  ", "spaced-out-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug := GenerateSlug(tt.input)
			assert.True(t, strings.HasPrefix(slug, tt.prefix), "得到 %q", slug)
			// 末尾 6 位随机后缀
			assert.Regexp(t, regexp.MustCompile(`-[a-z0-9]{6}$`), slug)
		})
	}
}

func TestGenerateSlugEmptyName(t *testing.T) {
	slug := GenerateSlug("!!!")
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{6}$`), slug)
}

func TestGenerateSlugUnique(t *testing.T) {
	a := GenerateSlug("same name")
	b := GenerateSlug("same name")
	assert.NotEqual(t, a, b)
}
