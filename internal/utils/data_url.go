package utils

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DataURL encodes content as a self-contained data URL with its sniffed media type
func DataURL(content []byte) string {
	mediaType, _, _ := strings.Cut(mimetype.Detect(content).String(), ";")
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(content)
}
