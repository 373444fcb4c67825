package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// hashBufferSize is the read chunk used when digesting file contents.
const hashBufferSize = 8 * 1024

// HashFile computes the SHA-256 digest of a file's full contents using
// fixed-size buffered reads, so memory stays constant regardless of file
// size.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := sha256.New()
	buf := make([]byte, hashBufferSize)

	for {
		n, err := f.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
