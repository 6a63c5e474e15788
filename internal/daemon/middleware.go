package daemon

import (
	"crypto/sha256"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/models"
	"golang.org/x/crypto/hkdf"
)

const (
	ConsoleCookieName = "console"

	// Cookie attribute holding the id of the caller's current editor
	currentEditorAttribute = "editor"

	sessionKeyInfo = "console session cookie"
)

// corsMiddleware builds the CORS handler. Allowed origins support exact
// matches and wildcard patterns like "https://*.example.com".
func corsMiddleware(cfg models.CORSConfig) gin.HandlerFunc {
	// Apply defaults for any unset values
	corsConfig := cfg.WithDefaults()

	logrus.WithFields(logrus.Fields{
		"allowedOrigins": corsConfig.AllowedOrigins,
	}).Debugln("CORS configuration")

	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, pattern := range corsConfig.AllowedOrigins {
				if matchOrigin(origin, pattern) {
					return true
				}
			}
			logrus.WithFields(logrus.Fields{
				"origin":         origin,
				"allowedOrigins": corsConfig.AllowedOrigins,
			}).Warnln("CORS origin not matched")
			return false
		},
		AllowMethods:     corsConfig.AllowedMethods,
		AllowHeaders:     corsConfig.AllowedHeaders,
		ExposeHeaders:    corsConfig.ExposeHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           time.Duration(corsConfig.MaxAge) * time.Second,
	})
}

// matchOrigin checks if the given origin matches the pattern
// Supports exact matches and wildcard patterns like "https://*.example.com"
func matchOrigin(origin, pattern string) bool {
	if origin == "" {
		return false
	}

	// Exact match
	if origin == pattern {
		return true
	}

	// Allow all origins
	if pattern == "*" {
		return true
	}

	// Wildcard pattern matching (e.g., "https://*.example.com")
	if strings.Contains(pattern, "*") {
		return matchWildcardOrigin(origin, pattern)
	}

	return false
}

// matchWildcardOrigin matches an origin against a wildcard pattern
// Pattern format: scheme://*.domain.tld or scheme://*.subdomain.domain.tld
func matchWildcardOrigin(origin, pattern string) bool {
	prefix, suffix, found := strings.Cut(pattern, "*")
	if !found {
		return false
	}

	// The suffix must start with a dot so "https://*example.com" cannot
	// match "https://evilexample.com"
	if !strings.HasPrefix(suffix, ".") {
		return false
	}

	if !strings.HasPrefix(origin, prefix) || !strings.HasSuffix(origin, suffix) {
		return false
	}

	// Nested subdomains are allowed, an empty one is not
	return len(origin) > len(prefix)+len(suffix)
}

// requestCounterMiddleware increments the request counter
func (s *Server) requestCounterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		atomic.AddInt64(&s.TotalRequests, 1)
		c.Next()
	}
}

// sessionKeys derives the cookie signing and encryption keys from the
// server secret.
func sessionKeys(secret string) (authKey, encryptionKey []byte, err error) {
	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(sessionKeyInfo))

	authKey = make([]byte, 64)
	encryptionKey = make([]byte, 32)

	if _, err := io.ReadFull(reader, authKey); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(reader, encryptionKey); err != nil {
		return nil, nil, err
	}
	return authKey, encryptionKey, nil
}

func getSessionStore(secret string, secure bool) sessions.Store {
	authKey, encryptionKey, err := sessionKeys(secret)
	if err != nil {
		// HKDF only fails when asked for more than 255 hashes of output
		logrus.WithError(err).Fatalln("Failed to derive session keys")
	}

	store := cookie.NewStore(authKey, encryptionKey)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400, // 1 day
		HttpOnly: true,
		Secure:   secure,
	})
	return store
}

// rememberEditor stores the editor id in the caller's cookie session.
func rememberEditor(c *gin.Context, id string) {
	session := sessions.Default(c)
	session.Set(currentEditorAttribute, id)
	if err := session.Save(); err != nil {
		logrus.WithError(err).Warnln("Failed to save editor session cookie")
	}
}

func forgetEditor(c *gin.Context, id string) {
	session := sessions.Default(c)
	if current, ok := session.Get(currentEditorAttribute).(string); !ok || current != id {
		return
	}
	session.Delete(currentEditorAttribute)
	if err := session.Save(); err != nil {
		logrus.WithError(err).Warnln("Failed to clear editor session cookie")
	}
}

func currentEditor(c *gin.Context) (string, bool) {
	id, ok := sessions.Default(c).Get(currentEditorAttribute).(string)
	return id, ok && len(id) > 0
}
