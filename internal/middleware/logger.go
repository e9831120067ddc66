package middleware

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// AccessLog writes one line per request to w.
func AccessLog(w io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${locals:requestid}] ${method} ${path} ${status} ${latency}\n",
		Output: w,
	})
}
