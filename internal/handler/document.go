package handler

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/user/curio/internal/model"
	"github.com/user/curio/internal/utils"
	"github.com/user/curio/internal/validation"
)

// 各文件夹类型允许的扩展名
var folderTypeExtensions = map[string][]string{
	"csv": {".csv"},
	"img": {".jpg", ".jpeg", ".png", ".gif"},
	"pdf": {".pdf"},
	"ppt": {".ppt", ".pptx"},
}

type createFolderRequest struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	MaxFileLimit int    `json:"maxFileLimit"`
}

// CreateFolder 创建文件夹，名称全局唯一
func (h *Handler) CreateFolder(c *gin.Context) {
	var req createFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body.")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if msg := validation.FolderName(req.Name); msg != "" {
		utils.BadRequest(c, msg)
		return
	}
	if msg := validation.FolderType(req.Type); msg != "" {
		utils.BadRequest(c, msg)
		return
	}
	if msg := validation.MaxFileLimit(req.MaxFileLimit); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	existing, err := h.Repos.Folder.FindByName(req.Name)
	if err != nil {
		utils.InternalServerError(c, "Failed to create folder.")
		return
	}
	if existing != nil {
		utils.Conflict(c, "Folder name already exists.")
		return
	}

	folder := &model.Folder{
		Name:         req.Name,
		Type:         req.Type,
		MaxFileLimit: req.MaxFileLimit,
	}
	if err := h.Repos.Folder.Create(folder); err != nil {
		log.Printf("[Folder] 创建文件夹失败: %v", err)
		utils.InternalServerError(c, "Failed to create folder.")
		return
	}

	utils.Created(c, gin.H{"message": "Folder created successfully.", "folder": folder})
}

type updateFolderRequest struct {
	Name         string `json:"name"`
	MaxFileLimit *int   `json:"maxFileLimit"`
}

// UpdateFolder 更新文件夹名称或文件数量上限，类型不可变
func (h *Handler) UpdateFolder(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		utils.NotFound(c, "Folder not found.")
		return
	}

	var req updateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body.")
		return
	}

	folder, err := h.Repos.Folder.FindByID(folderID)
	if err != nil {
		utils.InternalServerError(c, "Failed to update folder.")
		return
	}
	if folder == nil {
		utils.NotFound(c, "Folder not found.")
		return
	}

	if req.Name != "" {
		req.Name = strings.TrimSpace(req.Name)
		if msg := validation.FolderName(req.Name); msg != "" {
			utils.BadRequest(c, msg)
			return
		}
		other, err := h.Repos.Folder.FindByName(req.Name)
		if err != nil {
			utils.InternalServerError(c, "Failed to update folder.")
			return
		}
		if other != nil && other.FolderID != folder.FolderID {
			utils.Conflict(c, "Folder name already exists.")
			return
		}
		folder.Name = req.Name
	}
	if req.MaxFileLimit != nil {
		if msg := validation.MaxFileLimit(*req.MaxFileLimit); msg != "" {
			utils.BadRequest(c, msg)
			return
		}
		folder.MaxFileLimit = *req.MaxFileLimit
	}

	if err := h.Repos.Folder.Save(folder); err != nil {
		utils.InternalServerError(c, "Failed to update folder.")
		return
	}

	utils.OK(c, gin.H{"message": "Folder updated successfully.", "folder": folder})
}

// DeleteFolder 删除文件夹，连带清理对象存储里的文件内容
func (h *Handler) DeleteFolder(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		utils.NotFound(c, "Folder not found.")
		return
	}

	folder, err := h.Repos.Folder.FindByID(folderID)
	if err != nil {
		utils.InternalServerError(c, "Failed to delete folder.")
		return
	}
	if folder == nil {
		utils.NotFound(c, "Folder not found.")
		return
	}

	files, err := h.Repos.File.ListForFolder(folderID, "", "")
	if err != nil {
		utils.InternalServerError(c, "Failed to delete folder.")
		return
	}
	for _, f := range files {
		// 对象删除失败不阻塞元数据清理
		if err := h.Storage.Remove(c.Request.Context(), objectName(f)); err != nil {
			log.Printf("[Folder] 删除对象失败 (fileId: %s): %v", f.FileID, err)
		}
	}

	if err := h.Repos.Folder.Delete(folderID); err != nil {
		utils.InternalServerError(c, "Failed to delete folder.")
		return
	}

	utils.OK(c, gin.H{"message": "Folder deleted successfully."})
}

// ListFolders 全部文件夹及各自的文件数
func (h *Handler) ListFolders(c *gin.Context) {
	summaries, err := h.Repos.Folder.ListWithCounts()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch folders.")
		return
	}
	utils.OK(c, gin.H{"folders": summaries})
}

// UploadFile 上传文件：校验数量上限与扩展名，内容入对象存储，元数据入库
func (h *Handler) UploadFile(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		utils.NotFound(c, "Folder not found.")
		return
	}

	folder, err := h.Repos.Folder.FindByID(folderID)
	if err != nil {
		utils.InternalServerError(c, "Failed to upload file.")
		return
	}
	if folder == nil {
		utils.NotFound(c, "Folder not found.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "File is required.")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !extensionAllowed(folder.Type, ext) {
		utils.BadRequest(c, "File type does not match the folder type.")
		return
	}

	count, err := h.Repos.File.CountForFolder(folderID)
	if err != nil {
		utils.InternalServerError(c, "Failed to upload file.")
		return
	}
	if count >= int64(folder.MaxFileLimit) {
		utils.BadRequest(c, "Folder has reached its maximum file limit.")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerError(c, "Failed to upload file.")
		return
	}
	defer src.Close()

	file := &model.File{
		FileID:      uuid.New(),
		FolderID:    folderID,
		Name:        fileHeader.Filename,
		Description: c.PostForm("description"),
		Type:        strings.TrimPrefix(ext, "."),
		Size:        fileHeader.Size,
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.Storage.Put(c.Request.Context(), objectName(file), src, fileHeader.Size, contentType); err != nil {
		log.Printf("[File] 上传对象失败 (folderId: %s): %v", folderID, err)
		utils.InternalServerError(c, "Failed to upload file.")
		return
	}

	if err := h.Repos.File.Create(file); err != nil {
		utils.InternalServerError(c, "Failed to upload file.")
		return
	}

	utils.Created(c, gin.H{"message": "File uploaded successfully.", "file": file})
}

// ListFiles 文件夹内的文件列表，支持 sort/order 查询参数
func (h *Handler) ListFiles(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		utils.NotFound(c, "Folder not found.")
		return
	}

	folder, err := h.Repos.Folder.FindByID(folderID)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch files.")
		return
	}
	if folder == nil {
		utils.NotFound(c, "Folder not found.")
		return
	}

	sortBy := c.Query("sort")
	if msg := validation.FileSortParam(sortBy); msg != "" {
		utils.BadRequest(c, msg)
		return
	}
	order := strings.ToUpper(c.DefaultQuery("order", "ASC"))
	if msg := validation.OrderParam(order); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	files, err := h.Repos.File.ListForFolder(folderID, sortBy, order)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch files.")
		return
	}

	utils.OK(c, gin.H{"files": files})
}

// DeleteFile 删除文件（对象 + 元数据）
func (h *Handler) DeleteFile(c *gin.Context) {
	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		utils.NotFound(c, "Folder not found.")
		return
	}
	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		utils.NotFound(c, "File not found.")
		return
	}

	file, err := h.Repos.File.FindByID(fileID)
	if err != nil {
		utils.InternalServerError(c, "Failed to delete file.")
		return
	}
	if file == nil || file.FolderID != folderID {
		utils.NotFound(c, "File not found.")
		return
	}

	if err := h.Storage.Remove(c.Request.Context(), objectName(file)); err != nil {
		log.Printf("[File] 删除对象失败 (fileId: %s): %v", fileID, err)
	}

	if err := h.Repos.File.Delete(fileID); err != nil {
		utils.InternalServerError(c, "Failed to delete file.")
		return
	}

	utils.OK(c, gin.H{"message": "File deleted successfully."})
}

// objectName 对象存储里的键：folderId/fileId
func objectName(f *model.File) string {
	return f.FolderID.String() + "/" + f.FileID.String()
}

func extensionAllowed(folderType, ext string) bool {
	for _, allowed := range folderTypeExtensions[folderType] {
		if ext == allowed {
			return true
		}
	}
	return false
}
