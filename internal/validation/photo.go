// Package validation 提供各字段的纯校验函数。
// 校验通过返回空串，否则返回面向调用方的错误文案。
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	tagRe      = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)
)

// Username 用户名：3-30 位，字母数字下划线连字符
func Username(username string) string {
	if username == "" {
		return "Username is required."
	}
	if len(username) < 3 || len(username) > 30 {
		return "Username must be between 3 and 30 characters."
	}
	if !usernameRe.MatchString(username) {
		return "Username can only contain letters, numbers, underscores, and hyphens."
	}
	return ""
}

// Email 邮箱格式
func Email(email string) string {
	if email == "" {
		return "Email is required."
	}
	if !emailRe.MatchString(email) {
		return "Invalid email format."
	}
	return ""
}

// Password 密码长度下限
func Password(password string) string {
	if password == "" {
		return "Password is required."
	}
	if len(password) < 6 {
		return "Password must be at least 6 characters."
	}
	return ""
}

// ImageURL 必须是 Unsplash 的 HTTPS 链接
func ImageURL(imageURL string) string {
	if imageURL == "" {
		return "Image URL is required."
	}
	u, err := url.Parse(imageURL)
	if err != nil || u.Host == "" {
		return "Invalid URL format."
	}
	if u.Scheme != "https" || !strings.HasSuffix(u.Hostname(), "unsplash.com") {
		return "Invalid image URL. Must be from Unsplash HTTPS."
	}
	return ""
}

// Tags 新图片的标签列表：1-5 个，逐个检查内容
func Tags(tags []string) string {
	if len(tags) == 0 {
		return "At least one tag is required."
	}
	if len(tags) > 5 {
		return "Too many tags. Maximum is 5."
	}
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			return "Empty tags are not allowed."
		}
		if len(trimmed) > 20 {
			return fmt.Sprintf("Tag %q is too long. Maximum length is 20 characters.", tag)
		}
		if !tagRe.MatchString(trimmed) {
			return fmt.Sprintf("Tag %q contains invalid characters. Use only letters, numbers, hyphens, and underscores.", tag)
		}
	}
	return ""
}

// TagsArray 追加标签时的宽松检查：仅要求非空字符串
func TagsArray(tags []string) string {
	if tags == nil {
		return "Tags must be an array."
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return "Tags must be non-empty strings."
		}
	}
	return ""
}

// TagCount 合并后的标签约束：总数 1-5，大小写不敏感去重
func TagCount(existingTags, newTags []string) string {
	total := len(existingTags) + len(newTags)
	if total == 0 {
		return "At least one tag is required."
	}
	if total > 5 {
		return fmt.Sprintf("A photo can have no more than 5 tags in total. Current total: %d", total)
	}

	seen := make(map[string]struct{}, total)
	for _, tag := range append(append([]string{}, existingTags...), newTags...) {
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			return "Duplicate tags are not allowed."
		}
		seen[key] = struct{}{}
	}
	return ""
}

// SortOrder 排序方向：可缺省，出现时必须是 ASC/DESC
func SortOrder(sort string) string {
	if sort == "" {
		return ""
	}
	upper := strings.ToUpper(sort)
	if upper != "ASC" && upper != "DESC" {
		return "Invalid sort order. Must be 'ASC' or 'DESC'."
	}
	return ""
}

// SingleTag 单个搜索标签
func SingleTag(tag string) string {
	if tag == "" {
		return "Tag is required."
	}
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return "Tag cannot be empty."
	}
	if len(trimmed) > 20 {
		return "Tag cannot be longer than 20 characters."
	}
	if !tagRe.MatchString(trimmed) {
		return "Tag can only contain letters, numbers, hyphens, and underscores."
	}
	return ""
}

// UserID 用户 ID 必须是正整数（两个历史版本中取更严格的一个）
func UserID(userID string) string {
	if userID == "" {
		return "User ID is required."
	}
	n, err := strconv.Atoi(userID)
	if err != nil || n <= 0 {
		return "User ID must be a positive integer."
	}
	return ""
}

// ParseUserID 校验并解析用户 ID
func ParseUserID(userID string) (int, string) {
	if msg := UserID(userID); msg != "" {
		return 0, msg
	}
	n, _ := strconv.Atoi(userID)
	return n, ""
}
