package service

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BlobStore 文件内容存储的窄接口，文档服务只需要写入和删除
type BlobStore interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, objectName string) error
}

// ObjectStorage 基于 MinIO/S3 的 BlobStore 实现
type ObjectStorage struct {
	client *minio.Client
	bucket string
}

// NewObjectStorage 创建客户端并确保桶存在
func NewObjectStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*ObjectStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建对象存储客户端失败: %w", err)
	}

	s := &ObjectStorage{client: client, bucket: bucket}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, fmt.Errorf("检查存储桶失败: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("创建存储桶失败: %w", err)
		}
	}

	return s, nil
}

// Put 写入对象
func (s *ObjectStorage) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// Remove 删除对象
func (s *ObjectStorage) Remove(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}
