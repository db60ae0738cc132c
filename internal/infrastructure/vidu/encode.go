package vidu

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// EncodeImage wraps raw image bytes in a data URL suitable for the
// images field of a submit request. The MIME type is sniffed from the
// content itself.
func EncodeImage(data []byte) string {
	mime := mimetype.Detect(data)
	return fmt.Sprintf("data:%s;base64,%s", mime.String(), base64.StdEncoding.EncodeToString(data))
}

// EncodeImageFile reads a local image file and returns it as a data
// URL. The remote API accepts these in place of HTTPS URLs.
func EncodeImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image %s: %w", path, err)
	}
	return EncodeImage(data), nil
}
