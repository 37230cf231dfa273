package utils

import (
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugMultiDash  = regexp.MustCompile(`-+`)
	slugAlphabet   = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateSlug 由名称生成 URL 安全的唯一标识：
// 小写、去特殊字符、空格转连字符，末尾追加 6 位随机串。
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugSpaceRe.ReplaceAllString(slug, "-")
	slug = slugMultiDash.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	suffix, err := gonanoid.Generate(slugAlphabet, 6)
	if err != nil {
		// gonanoid 只有在随机源不可用时才会失败
		suffix = "000000"
	}
	if slug == "" {
		return suffix
	}
	return slug + "-" + suffix
}
