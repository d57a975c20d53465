// Package audit produces integrity reports over generated artifacts so
// auditors can verify reproducibility across runs.
package audit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// HashFile computes the SHA-256 digest of one file.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("audit: open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("audit: read %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CollectFiles returns the file itself, or every file under a directory,
// sorted for stable report ordering.
func CollectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("audit: stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(entry string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("audit: walk %s: %w", path, err)
	}
	sort.Strings(files)
	return files, nil
}

// HashPaths maps every file under the given paths to its digest.
func HashPaths(paths []string) (map[string]string, error) {
	digests := make(map[string]string)
	for _, path := range paths {
		files, err := CollectFiles(path)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			digest, err := HashFile(file)
			if err != nil {
				return nil, err
			}
			digests[file] = digest
		}
	}
	return digests, nil
}

// Sign computes an HMAC-SHA256 signature over the canonical JSON encoding
// of the digest map. encoding/json sorts map keys, so the payload is stable
// for a given set of digests.
func Sign(digests map[string]string, secret []byte) (string, error) {
	payload, err := json.Marshal(digests)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks a signature produced by Sign.
func Verify(digests map[string]string, secret []byte, signature string) (bool, error) {
	expected, err := Sign(digests, secret)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(expected), []byte(signature)), nil
}
