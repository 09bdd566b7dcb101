// Package ops holds the offline maintenance operations backing the
// noteflow-ops CLI.
package ops

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Report summarizes one backup or restore run.
type Report struct {
	Files int
	Bytes int64
}

// transientFile reports data-dir entries that must not land in a backup:
// SQLite sidecars of a live state store and half-written ledger files.
func transientFile(name string) bool {
	switch {
	case strings.HasSuffix(name, "-wal"),
		strings.HasSuffix(name, "-shm"),
		strings.HasSuffix(name, "-journal"),
		strings.HasSuffix(name, ".tmp"):
		return true
	}
	return false
}

// BackupDataDir archives the data directory (task/note/bookmark ledgers plus
// the state database) into a tar.gz at archivePath.
func BackupDataDir(srcDir, archivePath string) (Report, error) {
	var rep Report
	srcDir = filepath.Clean(strings.TrimSpace(srcDir))
	archivePath = filepath.Clean(strings.TrimSpace(archivePath))
	if srcDir == "" || archivePath == "" {
		return rep, fmt.Errorf("srcDir and archivePath are required")
	}
	info, err := os.Stat(srcDir)
	if err != nil {
		return rep, err
	}
	if !info.IsDir() {
		return rep, fmt.Errorf("source is not a directory: %s", srcDir)
	}
	if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
		return rep, err
	}

	f, err := os.Create(archivePath)
	if err != nil {
		return rep, err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	tw := tar.NewWriter(gz)
	defer tw.Close()

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == srcDir {
			return nil
		}
		// Symlinks don't round-trip predictably; the data dir never
		// contains them when written by this app.
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}
		if !d.IsDir() && transientFile(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		info, err := d.Info()
		if err != nil {
			return err
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = rel
		if info.IsDir() && !strings.HasSuffix(hdr.Name, "/") {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		n, err := io.Copy(tw, src)
		if err != nil {
			return err
		}
		rep.Files++
		rep.Bytes += n
		return nil
	})
	return rep, err
}

// RestoreDataDir unpacks a backup archive into targetDir. Entries that would
// escape targetDir abort the restore.
func RestoreDataDir(archivePath, targetDir string) (Report, error) {
	var rep Report
	archivePath = filepath.Clean(strings.TrimSpace(archivePath))
	targetDir = filepath.Clean(strings.TrimSpace(targetDir))
	if archivePath == "" || targetDir == "" {
		return rep, fmt.Errorf("archivePath and targetDir are required")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return rep, err
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return rep, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return rep, err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rep, err
		}

		rel, err := sanitizeArchiveRelPath(hdr.Name)
		if err != nil {
			return rep, err
		}
		outPath := filepath.Join(targetDir, rel)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(outPath, os.FileMode(hdr.Mode)); err != nil {
				return rep, err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return rep, err
			}
			dst, err := os.OpenFile(outPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(hdr.Mode))
			if err != nil {
				return rep, err
			}
			n, err := io.Copy(dst, tr)
			if err != nil {
				_ = dst.Close()
				return rep, err
			}
			if err := dst.Close(); err != nil {
				return rep, err
			}
			rep.Files++
			rep.Bytes += n
		default:
			// Ignore unsupported entry types.
		}
	}

	return rep, nil
}

func sanitizeArchiveRelPath(name string) (string, error) {
	name = filepath.Clean(strings.TrimSpace(name))
	if name == "." || name == "" {
		return "", fmt.Errorf("invalid archive entry path")
	}
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("invalid absolute archive entry path: %s", name)
	}
	if strings.HasPrefix(name, ".."+string(filepath.Separator)) || name == ".." {
		return "", fmt.Errorf("invalid archive entry path traversal: %s", name)
	}
	return name, nil
}
