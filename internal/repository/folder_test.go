package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/curio/internal/model"
)

func TestFolderCreateAndFind(t *testing.T) {
	repo := NewFolderRepository(newTestDB(t))

	folder := &model.Folder{Name: "reports", Type: "pdf", MaxFileLimit: 10}
	require.NoError(t, repo.Create(folder))
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", folder.FolderID.String())

	found, err := repo.FindByName("reports")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, folder.FolderID, found.FolderID)

	found, err = repo.FindByID(folder.FolderID)
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestFolderDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	folders := NewFolderRepository(db)
	files := NewFileRepository(db)

	folder := &model.Folder{Name: "reports", Type: "pdf", MaxFileLimit: 10}
	require.NoError(t, folders.Create(folder))
	require.NoError(t, files.Create(&model.File{FolderID: folder.FolderID, Name: "a.pdf", Type: "pdf"}))

	require.NoError(t, folders.Delete(folder.FolderID))

	count, err := files.CountForFolder(folder.FolderID)
	require.NoError(t, err)
	assert.Zero(t, count)

	found, err := folders.FindByID(folder.FolderID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFolderListWithCounts(t *testing.T) {
	db := newTestDB(t)
	folders := NewFolderRepository(db)
	files := NewFileRepository(db)

	f1 := &model.Folder{Name: "reports", Type: "pdf", MaxFileLimit: 10}
	f2 := &model.Folder{Name: "images", Type: "img", MaxFileLimit: 5}
	require.NoError(t, folders.Create(f1))
	require.NoError(t, folders.Create(f2))
	require.NoError(t, files.Create(&model.File{FolderID: f1.FolderID, Name: "a.pdf", Type: "pdf"}))
	require.NoError(t, files.Create(&model.File{FolderID: f1.FolderID, Name: "b.pdf", Type: "pdf"}))

	summaries, err := folders.ListWithCounts()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byName := map[string]int64{}
	for _, s := range summaries {
		byName[s.Name] = s.FileCount
	}
	assert.Equal(t, int64(2), byName["reports"])
	assert.Equal(t, int64(0), byName["images"])
}

func TestFileListForFolderSorting(t *testing.T) {
	db := newTestDB(t)
	folders := NewFolderRepository(db)
	files := NewFileRepository(db)

	folder := &model.Folder{Name: "reports", Type: "pdf", MaxFileLimit: 10}
	require.NoError(t, folders.Create(folder))

	now := time.Now()
	require.NoError(t, files.Create(&model.File{FolderID: folder.FolderID, Name: "big.pdf", Type: "pdf", Size: 300, UploadedAt: now.Add(-time.Hour)}))
	require.NoError(t, files.Create(&model.File{FolderID: folder.FolderID, Name: "small.pdf", Type: "pdf", Size: 100, UploadedAt: now}))

	got, err := files.ListForFolder(folder.FolderID, "size", "DESC")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "big.pdf", got[0].Name)

	got, err = files.ListForFolder(folder.FolderID, "uploadedAt", "ASC")
	require.NoError(t, err)
	assert.Equal(t, "big.pdf", got[0].Name)

	got, err = files.ListForFolder(folder.FolderID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "big.pdf", got[0].Name, "默认按上传时间升序")
}
