package aws_s3

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/haierkeys/memos-mirror/pkg/fileurl"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (p *S3) key(pathKey string) string {
	return fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey
}

func (p *S3) IsExist(pathKey string) bool {
	_, err := p.S3Client.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: aws.String(p.Config.BucketName),
		Key:    aws.String(p.key(pathKey)),
	})
	return err == nil
}

// CreateDir is a no-op: S3 has a flat keyspace.
func (p *S3) CreateDir(pathKey string) error {
	return nil
}

func (p *S3) SendContent(pathKey string, content []byte, modTime time.Time) (string, error) {
	fileKey := p.key(pathKey)
	_, err := p.S3Client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(p.Config.BucketName),
		Key:         aws.String(fileKey),
		Body:        bytes.NewReader(content),
		ContentType: aws.String("text/markdown"),
	})
	if err != nil {
		return "", errors.Wrap(err, "aws_s3")
	}
	return fileKey, nil
}

func (p *S3) SendFile(pathKey string, file io.Reader, contentType string, modTime time.Time) (string, error) {
	fileKey := p.key(pathKey)
	input := &s3.PutObjectInput{
		Bucket: aws.String(p.Config.BucketName),
		Key:    aws.String(fileKey),
		Body:   file,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	_, err := p.S3Client.PutObject(context.Background(), input)
	if err != nil {
		p.logger.Warn("s3 put object failed", zap.String("key", fileKey), zap.Error(err))
		return "", errors.Wrap(err, "aws_s3")
	}
	return fileKey, nil
}
