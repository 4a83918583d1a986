package export

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/xitongsys/parquet-go/source"
)

type S3UploaderFactory struct {
	client *s3.Client
}

func NewS3UploaderFactory(region string) (*S3UploaderFactory, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}
	return &S3UploaderFactory{client: s3.NewFromConfig(cfg)}, nil
}

func (f *S3UploaderFactory) NewUploader(bucket, objectPath string) (*S3Uploader, error) {
	return &S3Uploader{client: f.client, bucket: bucket, objectPath: objectPath}, nil
}

// S3Uploader buffers a parquet file in memory and uploads the object on
// Close. It satisfies source.ParquetFile for write-only use; the parquet
// writer only seeks forward over what it has already buffered.
type S3Uploader struct {
	client     *s3.Client
	bucket     string
	objectPath string
	buffer     bytes.Buffer
	offset     int64
}

func (u *S3Uploader) Open(name string) (source.ParquetFile, error) {
	return u, nil
}

func (u *S3Uploader) Create(name string) (source.ParquetFile, error) {
	return u, nil
}

func (u *S3Uploader) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		u.offset = offset
	case io.SeekCurrent:
		u.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for S3 upload")
	}
	return u.offset, nil
}

func (u *S3Uploader) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for S3 upload")
}

func (u *S3Uploader) Write(p []byte) (int, error) {
	return u.buffer.Write(p)
}

func (u *S3Uploader) Close() error {
	_, err := u.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(u.objectPath),
		Body:   bytes.NewReader(u.buffer.Bytes()),
	})
	if err != nil {
		return fmt.Errorf("unable to upload object to S3: %v", err)
	}
	return nil
}
