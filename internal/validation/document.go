package validation

// 文档服务侧的参数校验。

// FolderName 文件夹名称
func FolderName(name string) string {
	if name == "" {
		return "Folder name is required."
	}
	if len(name) > 100 {
		return "Folder name must not exceed 100 characters."
	}
	return ""
}

// FolderType 文件夹类型枚举
func FolderType(folderType string) string {
	switch folderType {
	case "csv", "img", "pdf", "ppt":
		return ""
	}
	return "Invalid folder type. Allowed values: csv, img, pdf, ppt."
}

// MaxFileLimit 文件数量上限必须为正
func MaxFileLimit(limit int) string {
	if limit <= 0 {
		return "maxFileLimit must be a positive integer."
	}
	return ""
}

// FileSortParam 文件列表排序字段（可缺省，默认 uploadedAt）
func FileSortParam(sort string) string {
	if sort == "" {
		return ""
	}
	switch sort {
	case "size", "uploadedAt":
		return ""
	}
	return "Invalid sort parameter. Allowed values: size, uploadedAt."
}
