package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Archive uploads full session transcripts to S3 for later coaching review.
// It is optional — sessions run fine without a configured bucket.
type Archive struct {
	client *s3.Client
	bucket string
}

// NewArchive creates an S3 transcript archive.
func NewArchive(client *s3.Client, bucket string) *Archive {
	return &Archive{client: client, bucket: bucket}
}

// Save uploads the combined transcript as plain text keyed by session id and
// returns the object key.
func (a *Archive) Save(ctx context.Context, sessionID, transcript string) (string, error) {
	key := "transcripts/" + sessionID + ".txt"

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        &a.bucket,
		Key:           &key,
		Body:          strings.NewReader(transcript),
		ContentType:   aws.String("text/plain; charset=utf-8"),
		ContentLength: aws.Int64(int64(len(transcript))),
	})
	if err != nil {
		return "", fmt.Errorf("archive transcript: %w", err)
	}
	return key, nil
}
