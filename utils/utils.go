package utils

import (
	"encoding/hex"
	rnd "math/rand"
	"os"
	"path/filepath"
)

const validS3KeyCharacters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-"
const s3KeyLength = 8

// NewS3Key generates a new S3 key value
func NewS3Key() string {
	b := make([]byte, s3KeyLength)
	for i := range b {
		b[i] = validS3KeyCharacters[rnd.Intn(len(validS3KeyCharacters))]
	}
	return string(b)
}

// TempFileName generates a temporary filename scoped to one generator
// instance. Only the name is reserved; the file itself is created lazily.
func TempFileName(prefix, suffix string) string {
	randBytes := make([]byte, 8)
	rnd.Read(randBytes)
	return filepath.Join(os.TempDir(), prefix+hex.EncodeToString(randBytes)+suffix)
}
