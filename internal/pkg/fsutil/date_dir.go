package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JoonHoSon/cryptoutil/internal/domain/liberr"
)

// DirectoryDateType selects how much of the date names a generated directory.
type DirectoryDateType int

const (
	// YYYYMMDD names the directory by year, month and day.
	YYYYMMDD DirectoryDateType = iota
	// YYYYMM names the directory by year and month.
	YYYYMM
	// YYYY names the directory by year only.
	YYYY
)

// ParseDirectoryDateType accepts "yyyymmdd", "yyyymm" and "yyyy" in any case.
func ParseDirectoryDateType(s string) (DirectoryDateType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yyyymmdd":
		return YYYYMMDD, nil
	case "yyyymm":
		return YYYYMM, nil
	case "yyyy":
		return YYYY, nil
	}
	return 0, fmt.Errorf("unsupported directory date type: %q", s)
}

// PathString formats date as a directory name with separator between the parts.
// For example YYYYMMDD with "-" yields "2024-06-26".
func (t DirectoryDateType) PathString(date time.Time, separator string) string {
	parts := []string{fmt.Sprintf("%04d", date.Year())}
	if t != YYYY {
		parts = append(parts, fmt.Sprintf("%02d", int(date.Month())))
	}
	if t == YYYYMMDD {
		parts = append(parts, fmt.Sprintf("%02d", date.Day()))
	}
	return strings.Join(parts, separator)
}

// GeneratePath creates parent/<date> for the current local date and returns it.
func GeneratePath(parent string, dateType DirectoryDateType, separator string) (string, error) {
	return GeneratePathAt(parent, dateType, separator, time.Now())
}

// GeneratePathAt creates parent/<date> for the given date. The parent must
// already exist; an existing date directory is reused.
func GeneratePathAt(parent string, dateType DirectoryDateType, separator string, date time.Time) (string, error) {
	if parent == "" {
		return "", liberr.NewMissingArgument("parent path is not specified")
	}

	info, err := os.Stat(parent)
	if err != nil {
		return "", liberr.WrapInvalidArgument(fmt.Sprintf("[%s] path does not exist", parent), err)
	}
	if !info.IsDir() {
		return "", liberr.InvalidArgumentf("[%s] is not a directory", parent)
	}

	dir := filepath.Join(parent, dateType.PathString(date, separator))
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", liberr.WrapInvalidArgument(fmt.Sprintf("failed to create [%s]", dir), err)
	}

	return dir, nil
}
