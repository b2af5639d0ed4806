// internal/services/s3_archiver.go
package services

import (
    "bytes"
    "context"
    "errors"
    "fmt"
    "net/http"
    "path"
    "strings"

    "github.com/aws/aws-sdk-go-v2/aws"
    awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
    "github.com/aws/aws-sdk-go-v2/feature/s3/manager"
    "github.com/aws/aws-sdk-go-v2/service/s3"

    "adbridge/internal/config"
    "adbridge/internal/models"
)

// S3Archiver is the alternate archival backend for deployments that keep the
// creative archive in a bucket instead of Drive. The brand's folder id becomes
// a key prefix.
type S3Archiver struct {
    s3Client      *s3.Client
    bucket        string
    publicBaseURL string
}

func NewS3Archiver(s3Config *config.S3Config) *S3Archiver {
    return &S3Archiver{
        s3Client:      s3Config.Client,
        bucket:        s3Config.Bucket,
        publicBaseURL: s3Config.PublicBaseURL,
    }
}

var _ Archiver = (*S3Archiver)(nil)

func (sa *S3Archiver) Store(ctx context.Context, data []byte, mediaType, fileName, folderID string) (*models.ArchivalResult, error) {
    key := path.Join(folderID, fileName)

    uploader := manager.NewUploader(sa.s3Client)
    _, err := uploader.Upload(ctx, &s3.PutObjectInput{
        Bucket:      aws.String(sa.bucket),
        Key:         aws.String(key),
        Body:        bytes.NewReader(data),
        ContentType: aws.String(mediaType),
    })
    if err != nil {
        var respErr *awshttp.ResponseError
        if errors.As(err, &respErr) {
            code := respErr.HTTPStatusCode()
            if code == http.StatusUnauthorized || code == http.StatusForbidden {
                return nil, fmt.Errorf("%w: status=%d %v", ErrArchivalAuth, code, err)
            }
        }
        return nil, fmt.Errorf("%w: %v", ErrArchivalWrite, err)
    }

    link := strings.TrimRight(sa.publicBaseURL, "/") + "/" + key
    return &models.ArchivalResult{ID: key, ViewLink: link}, nil
}
