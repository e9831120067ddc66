package spa

import (
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Some platform MIME databases report text/plain or video/mp2t for these.
var contentTypes = map[string]string{
	".js":  "application/javascript",
	".mjs": "application/javascript",
	".ts":  "application/javascript",
	".tsx": "application/javascript",
	".css": "text/css",
}

// ContentType infers the MIME type of name from its extension.
func ContentType(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ext == "" {
		return fiber.MIMEOctetStream
	}
	return utils.GetMIME(ext)
}
