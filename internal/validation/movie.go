package validation

// 电影服务侧的参数校验，枚举全部在入口处封闭。

// ListParam 排序接口的 list 参数
func ListParam(list string) string {
	switch list {
	case "watchlist", "wishlist", "curatedList":
		return ""
	}
	return "Invalid list parameter. Allowed values: watchlist, wishlist, curatedList."
}

// ListTypeParam 过滤接口的 listType 参数（可缺省）
func ListTypeParam(listType string) string {
	if listType == "" {
		return ""
	}
	switch listType {
	case "watchlist", "wishlist", "curatedList":
		return ""
	}
	return "Invalid listType parameter. Valid options are: watchlist, wishlist, curatedList."
}

// SortByParam 排序字段
func SortByParam(sortBy string) string {
	switch sortBy {
	case "rating", "releaseYear":
		return ""
	}
	return "Invalid sortBy parameter. Allowed values: rating, releaseYear."
}

// OrderParam 排序方向（严格大写，与历史接口保持一致）
func OrderParam(order string) string {
	switch order {
	case "ASC", "DESC":
		return ""
	}
	return "Invalid order parameter. Allowed values: ASC, DESC."
}

// ReviewRating 评分范围 [0,10]
func ReviewRating(rating float64) string {
	if rating < 0 || rating > 10 {
		return "Rating must be between 0 and 10 and should be a number."
	}
	return ""
}

// ReviewText 影评长度上限 500 字符
func ReviewText(text string) string {
	if len(text) > 500 {
		return "Review text must not exceed 500 characters."
	}
	return ""
}
