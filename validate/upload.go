package validate

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"tourhub/constants"
	"tourhub/utils"

	"github.com/gofiber/fiber/v2"
)

const UploadKey = "upload"

var allowedImageTypes = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageUpload checks the multipart "image" field and stores its header under UploadKey.
func ImageUpload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil || file == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.FILE_REQUIRED, errors.New("missing image field"))
		}
		if file.Size > constants.UPLOAD_MAX_BYTES {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.FILE_TOO_LARGE, nil)
		}
		ext := strings.ToLower(filepath.Ext(file.Filename))
		contentType := file.Header.Get(fiber.HeaderContentType)
		if !allowedImageTypes[ext] || (contentType != "" && !strings.HasPrefix(contentType, "image/")) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.FILE_TYPE_NOT_ALLOWED, nil)
		}

		c.Locals(UploadKey, file)
		return c.Next()
	}
}

func Upload(c *fiber.Ctx) (*multipart.FileHeader, error) {
	file, ok := c.Locals(UploadKey).(*multipart.FileHeader)
	if !ok {
		return nil, errors.New(constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	return file, nil
}
