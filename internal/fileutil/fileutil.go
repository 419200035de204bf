// Package fileutil holds file modes for files specdiff writes.
package fileutil

import "os"

// OwnerReadWrite is the mode of report files. Reports can quote API
// descriptions, so only the owner may read them.
const OwnerReadWrite os.FileMode = 0o600

// CreateReport opens path for writing a report, truncating any existing file.
func CreateReport(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, OwnerReadWrite)
}
