// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package archive serializes a directory tree into a single byte stream
// (tar) so the whole tree can be encrypted as one payload, and reverses the
// serialization after decryption. Optional gzip compression is applied to
// the packed stream before encryption; whether it was applied travels in
// the container flags, not in this package.
//
// Symbolic links are never followed and never stored. Only regular files
// and directories survive a pack/unpack round-trip.
package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Pack walks the tree rooted at root and returns it as a tar stream.
// Every entry is recorded under its slash-separated path relative to root;
// empty directories are kept as directory headers so they survive the
// round-trip. Symlinks and other non-regular entries are skipped.
func Pack(root string) ([]byte, error) {
	info, err := os.Lstat(root)
	if err != nil {
		return nil, fmt.Errorf("stat pack root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("pack root %q is not a directory", root)
	}

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		// Never follow or store symlinks.
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if !d.IsDir() && !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		fi, err := d.Info()
		if err != nil {
			return err
		}

		header, err := tar.FileInfoHeader(fi, "")
		if err != nil {
			return err
		}
		header.Name = name
		if d.IsDir() {
			header.Name += "/"
		}

		if err = tw.WriteHeader(header); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(tw, file)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("pack directory: %w", err)
	}

	if err = tw.Close(); err != nil {
		return nil, fmt.Errorf("finalize pack stream: %w", err)
	}

	return buf.Bytes(), nil
}

// Unpack recreates a packed tree under dest, creating dest if needed.
// Entries whose paths would escape dest and streams that end mid-entry fail
// with ErrUnpack; a partial tree may remain under dest in that case, which
// is acceptable because dest is always a fresh output location.
func Unpack(data []byte, dest string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("create unpack destination: %w", err)
	}

	tr := tar.NewReader(bytes.NewReader(data))
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Join(ErrUnpack, err)
		}

		name := filepath.FromSlash(header.Name)
		if !filepath.IsLocal(name) {
			return errors.Join(ErrUnpack, fmt.Errorf("entry %q escapes destination", header.Name))
		}
		path := filepath.Join(dest, name)

		switch header.Typeflag {
		case tar.TypeDir:
			if err = os.MkdirAll(path, fs.FileMode(header.Mode)&fs.ModePerm|0o700); err != nil {
				return fmt.Errorf("create directory %q: %w", path, err)
			}
		case tar.TypeReg:
			if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("create parent directory for %q: %w", path, err)
			}
			if err = writeEntry(path, tr, fs.FileMode(header.Mode)&fs.ModePerm); err != nil {
				return err
			}
		default:
			// Anything else was filtered out by Pack; its presence means a
			// corrupt or foreign stream.
			return errors.Join(ErrUnpack, fmt.Errorf("unexpected entry type %d for %q", header.Typeflag, header.Name))
		}
	}
}

func writeEntry(path string, r io.Reader, perm fs.FileMode) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm|0o600)
	if err != nil {
		return fmt.Errorf("create file %q: %w", path, err)
	}

	if _, err = io.Copy(file, r); err != nil {
		file.Close()
		return errors.Join(ErrUnpack, fmt.Errorf("write file %q: %w", path, err))
	}

	return file.Close()
}

// Compress gzips a packed stream before encryption.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)

	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("compress pack stream: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize compressed stream: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress. A stream that is not valid gzip fails with
// ErrUnpack: the container flags promised a compressed payload, so a bad
// stream means corruption after an otherwise successful decryption.
func Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Join(ErrUnpack, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Join(ErrUnpack, err)
	}

	return out, nil
}
