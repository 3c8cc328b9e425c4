package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/orderly-eats/gateway/config"
)

// PictureService stores profile pictures in S3 and hands back public URLs
// for the profile document.
type PictureService struct {
	s3Config *config.S3Config
}

// NewPictureService creates a new PictureService instance.
func NewPictureService(s3Config *config.S3Config) *PictureService {
	return &PictureService{s3Config: s3Config}
}

// Upload stores picture data under a fresh key and returns its public URL.
func (s *PictureService) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	ext := ".jpg"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	key := fmt.Sprintf("profile-pictures/%s%s", uuid.New().String(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := s.s3Config.ObjectURL(key)
	log.Printf("[picture] uploaded profile picture to %s", url)
	return url, nil
}
