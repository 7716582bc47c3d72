package helper

import (
	"context"
	"fmt"
	"io"

	"tourhub/config"
	"tourhub/model"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// ImageStore uploads and removes images on the CDN.
type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*model.UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

type CloudinaryStore struct {
	cld  *cloudinary.Cloudinary
	root string
}

func InitCloudinary(root string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{cld: cld, root: root}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, folder string) (*model.UploadResult, error) {
	if folder == "" {
		folder = "general"
	}
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       s.root + "/" + folder,
		PublicID:     uuid.NewString(),
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	return &model.UploadResult{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Width:    res.Width,
		Height:   res.Height,
		Format:   res.Format,
		Bytes:    res.Bytes,
	}, nil
}

func (s *CloudinaryStore) Destroy(ctx context.Context, publicID string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", res.Error.Message)
	}
	return nil
}
