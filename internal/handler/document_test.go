package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/curio/internal/model"
)

// doUpload 发送 multipart 文件上传请求
func (e *testEnv) doUpload(t *testing.T, path, filename, description string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	if description != "" {
		require.NoError(t, mw.WriteField("description", description))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func createFolder(t *testing.T, env *testEnv, name, folderType string, limit int) string {
	t.Helper()
	w := env.doJSON(t, http.MethodPost, "/api/folders", map[string]interface{}{
		"name":         name,
		"type":         folderType,
		"maxFileLimit": limit,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	folder := decode(t, w)["folder"].(map[string]interface{})
	return folder["folderId"].(string)
}

func TestCreateFolder(t *testing.T) {
	env := newTestEnv(t)

	id := createFolder(t, env, "reports", "pdf", 10)
	assert.NotEmpty(t, id)

	// 名称唯一
	w := env.doJSON(t, http.MethodPost, "/api/folders", map[string]interface{}{
		"name": "reports", "type": "pdf", "maxFileLimit": 5,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Folder name already exists.", decode(t, w)["error"])
}

func TestCreateFolderValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/folders", map[string]interface{}{
		"name": "", "type": "pdf", "maxFileLimit": 5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Folder name is required.", decode(t, w)["error"])

	w = env.doJSON(t, http.MethodPost, "/api/folders", map[string]interface{}{
		"name": "docs", "type": "doc", "maxFileLimit": 5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid folder type. Allowed values: csv, img, pdf, ppt.", decode(t, w)["error"])

	w = env.doJSON(t, http.MethodPost, "/api/folders", map[string]interface{}{
		"name": "docs", "type": "pdf", "maxFileLimit": 0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "maxFileLimit must be a positive integer.", decode(t, w)["error"])
}

func TestUpdateFolder(t *testing.T) {
	env := newTestEnv(t)

	id := createFolder(t, env, "reports", "pdf", 10)

	w := env.doJSON(t, http.MethodPut, "/api/folders/"+id, map[string]interface{}{
		"name": "archive", "maxFileLimit": 20,
	})
	require.Equal(t, http.StatusOK, w.Code)
	folder := decode(t, w)["folder"].(map[string]interface{})
	assert.Equal(t, "archive", folder["name"])
	assert.Equal(t, float64(20), folder["maxFileLimit"])

	w = env.doJSON(t, http.MethodPut, "/api/folders/00000000-0000-0000-0000-000000000001", map[string]interface{}{"name": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Folder not found.", decode(t, w)["error"])
}

func TestUploadFile(t *testing.T) {
	env := newTestEnv(t)

	id := createFolder(t, env, "reports", "pdf", 2)

	w := env.doUpload(t, "/api/folders/"+id+"/files", "q1.pdf", "first quarter", []byte("%PDF-1.4"))
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "File uploaded successfully.", body["message"])

	file := body["file"].(map[string]interface{})
	assert.Equal(t, "q1.pdf", file["name"])
	assert.Equal(t, "first quarter", file["description"])
	assert.Equal(t, "pdf", file["type"])
	assert.Equal(t, float64(8), file["size"])

	// 内容进了对象存储
	assert.Len(t, env.blobs.objects, 1)
}

func TestUploadFileTypeMismatch(t *testing.T) {
	env := newTestEnv(t)

	id := createFolder(t, env, "reports", "pdf", 10)

	w := env.doUpload(t, "/api/folders/"+id+"/files", "photo.png", "", []byte("png-bytes"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "File type does not match the folder type.", decode(t, w)["error"])
	assert.Empty(t, env.blobs.objects)
}

func TestUploadFileLimitReached(t *testing.T) {
	env := newTestEnv(t)

	id := createFolder(t, env, "reports", "pdf", 1)

	w := env.doUpload(t, "/api/folders/"+id+"/files", "a.pdf", "", []byte("x"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doUpload(t, "/api/folders/"+id+"/files", "b.pdf", "", []byte("y"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Folder has reached its maximum file limit.", decode(t, w)["error"])
}

func TestListFiles(t *testing.T) {
	env := newTestEnv(t)

	id := createFolder(t, env, "reports", "pdf", 10)
	require.Equal(t, http.StatusCreated, env.doUpload(t, "/api/folders/"+id+"/files", "big.pdf", "", bytes.Repeat([]byte("a"), 100)).Code)
	require.Equal(t, http.StatusCreated, env.doUpload(t, "/api/folders/"+id+"/files", "small.pdf", "", []byte("a")).Code)

	w := env.doJSON(t, http.MethodGet, "/api/folders/"+id+"/files?sort=size&order=DESC", nil)
	require.Equal(t, http.StatusOK, w.Code)
	files := decode(t, w)["files"].([]interface{})
	require.Len(t, files, 2)
	assert.Equal(t, "big.pdf", files[0].(map[string]interface{})["name"])

	w = env.doJSON(t, http.MethodGet, "/api/folders/"+id+"/files?sort=name", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid sort parameter. Allowed values: size, uploadedAt.", decode(t, w)["error"])
}

func TestListFolders(t *testing.T) {
	env := newTestEnv(t)

	id := createFolder(t, env, "reports", "pdf", 10)
	createFolder(t, env, "images", "img", 5)
	require.Equal(t, http.StatusCreated, env.doUpload(t, "/api/folders/"+id+"/files", "a.pdf", "", []byte("x")).Code)

	w := env.doJSON(t, http.MethodGet, "/api/folders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	folders := decode(t, w)["folders"].([]interface{})
	require.Len(t, folders, 2)

	counts := map[string]float64{}
	for _, f := range folders {
		m := f.(map[string]interface{})
		counts[m["name"].(string)] = m["fileCount"].(float64)
	}
	assert.Equal(t, float64(1), counts["reports"])
	assert.Equal(t, float64(0), counts["images"])
}

func TestDeleteFile(t *testing.T) {
	env := newTestEnv(t)

	id := createFolder(t, env, "reports", "pdf", 10)
	w := env.doUpload(t, "/api/folders/"+id+"/files", "a.pdf", "", []byte("x"))
	require.Equal(t, http.StatusCreated, w.Code)
	fileID := decode(t, w)["file"].(map[string]interface{})["fileId"].(string)

	w = env.doJSON(t, http.MethodDelete, "/api/folders/"+id+"/files/"+fileID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "File deleted successfully.", decode(t, w)["message"])
	assert.Empty(t, env.blobs.objects)

	w = env.doJSON(t, http.MethodDelete, "/api/folders/"+id+"/files/"+fileID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found.", decode(t, w)["error"])
}

func TestDeleteFolderCascades(t *testing.T) {
	env := newTestEnv(t)

	id := createFolder(t, env, "reports", "pdf", 10)
	require.Equal(t, http.StatusCreated, env.doUpload(t, "/api/folders/"+id+"/files", "a.pdf", "", []byte("x")).Code)

	w := env.doJSON(t, http.MethodDelete, "/api/folders/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Folder deleted successfully.", decode(t, w)["message"])
	assert.Empty(t, env.blobs.objects, "文件夹删除应连带清理对象")

	w = env.doJSON(t, http.MethodGet, "/api/folders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["folders"])

	var files []*model.File
	require.NoError(t, env.repos.DB.Find(&files).Error)
	assert.Empty(t, files)
}
