package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// quietPrefixes are not access-logged.
var quietPrefixes = []string{"/assets/", "/media/", "/favicon", EventsPath, "/healthz"}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP returns a short per-process pseudonym for ip. The same ip maps to
// the same value until restart.
func hashIP(ip, salt string) string {
	h := sha256.New()
	h.Write([]byte(ip + salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// accessLog logs page requests through zap. Client addresses are only ever
// logged hashed, and not at all when the client sends DNT: 1.
func accessLog(logger *zap.Logger, salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range quietPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if c.GetHeader("DNT") != "1" {
			fields = append(fields,
				zap.String("visitor", hashIP(c.ClientIP(), salt)),
				zap.String("user_agent", c.GetHeader("User-Agent")))
		}
		logger.Info("request", fields...)
	}
}
