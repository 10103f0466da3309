package domain

import (
	"path/filepath"
	"strings"
)

// Upload is an image selected by the operator, either read from a file or
// captured from the live PCB channel.
type Upload struct {
	// Name is the file name sent to the backend.
	Name string `json:"name"`
	// Data holds the encoded image bytes.
	Data []byte `json:"-"`
}

// allowedExtensions are the image types the backend accepts for uploads.
var allowedExtensions = map[string]string{ //nolint: gochecknoglobals
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ContentType returns the MIME type derived from the file extension, or an
// empty string when the extension is not accepted by the backend.
func (u Upload) ContentType() string {
	return allowedExtensions[strings.ToLower(filepath.Ext(u.Name))]
}

// Valid reports whether the upload has a name with an accepted extension and
// a non-empty payload.
func (u Upload) Valid() bool {
	return u.ContentType() != "" && len(u.Data) > 0
}
