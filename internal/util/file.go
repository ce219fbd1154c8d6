package util

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
)

const randomChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateRandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = randomChars[rand.Intn(len(randomChars))]
	}
	return string(b)
}

// GenerateInviteCode returns a 6-digit numeric code for worker invites.
func GenerateInviteCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// ValidateMimeType sniffs the first 512 bytes and checks the detected type
// against the allowed prefixes. The reader is consumed; callers must seek
// back before reusing it.
func ValidateMimeType(r io.Reader, allowed []string) (string, error) {
	buf := make([]byte, 512)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	detected := http.DetectContentType(buf[:n])
	for _, prefix := range allowed {
		if strings.HasPrefix(detected, prefix) {
			return detected, nil
		}
	}
	return detected, fmt.Errorf("detected content type %s is not allowed", detected)
}

func HasAllowedExtension(name string, allowed []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range allowed {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
