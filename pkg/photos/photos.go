// Package photos stores the identification photos taken of new clients.
package photos

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// ErrInvalidImage is returned when photo data cannot be decoded.
var ErrInvalidImage = errors.New("invalid image data")

// Store persists a client photo and returns the reference saved on the client record.
type Store interface {
	Save(ctx context.Context, fullname string, data []byte) (string, error)
	// Delete removes a photo saved by this store. Unknown references are ignored.
	Delete(ctx context.Context, ref string) error
}

// DecodeDataURL accepts "data:<mime>;base64,<payload>" or a bare base64 payload.
func DecodeDataURL(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		comma := strings.IndexByte(s, ',')
		if comma < 0 || !strings.HasSuffix(s[:comma], ";base64") {
			return nil, ErrInvalidImage
		}
		s = s[comma+1:]
	}
	if s == "" {
		return nil, ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return data, nil
}

// IsReference reports whether s points at an already stored photo rather than carrying image data.
func IsReference(s string) bool {
	return strings.HasPrefix(s, "/uploads/") || strings.HasPrefix(s, "s3://") ||
		strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}

// objectKey builds "YYYY-MM/<name>_<YYYY-MM-DD>_<random>.jpg".
func objectKey(fullname string, now time.Time) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r), r == '_', r == '-':
			return r
		case unicode.IsSpace(r):
			return '_'
		default:
			return -1
		}
	}, strings.TrimSpace(fullname))
	if name == "" {
		name = "unknown"
	}

	file := fmt.Sprintf("%s_%s_%s.jpg", name, now.Format("2006-01-02"), uuid.New().String()[:8])
	return path.Join(now.Format("2006-01"), file)
}
