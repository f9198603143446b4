package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"techbuddies/biz/infrastructure/config"
	"techbuddies/biz/infrastructure/consts"
	"techbuddies/biz/infrastructure/util/log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

// MediaClient 媒体文件存储客户端, 上传后返回可访问的URL
type MediaClient struct {
	uploader *s3manager.Uploader
	bucket   string
	baseURL  string
}

func NewMediaClient(config *config.Config) (*MediaClient, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(config.Media.Region),
		Endpoint:         aws.String(config.Media.Endpoint),
		Credentials:      credentials.NewStaticCredentials(config.Media.AccessKey, config.Media.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return &MediaClient{
		uploader: s3manager.NewUploader(sess),
		bucket:   config.Media.Bucket,
		baseURL:  strings.TrimRight(config.Media.BaseURL, "/"),
	}, nil
}

// UploadFile 上传 multipart 文件, prefix 形如 "Course_image"
func (c *MediaClient) UploadFile(ctx context.Context, fh *multipart.FileHeader, prefix string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	if _, err = buf.ReadFrom(f); err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s_%d_%s%s",
		consts.MediaFolder, prefix, time.Now().UnixMilli(), uuid.New().String(), path.Ext(fh.Filename))

	_, err = c.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(fh.Header.Get("Content-Type")),
	})
	if err != nil {
		log.CtxError(ctx, "上传媒体文件失败, key=%s, err=%v", key, err)
		return "", err
	}

	return c.baseURL + "/" + key, nil
}
