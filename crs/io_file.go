// SPDX-License-Identifier: MIT
// Package crs: extension-based file dispatch for the three on-disk formats.

package crs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads a sparse matrix, picking the decoder from the file
// extension: .mtx/.mm → MatrixMarket, .bin → binary, .crs → text.
func ReadFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mtx", ".mm":
		return ReadMatrixMarket(f)
	case ".bin":
		return ReadBinary(f)
	case ".crs":
		return ReadText(f)
	default:
		return nil, fmt.Errorf("ReadFile: %q: %w", path, ErrUnknownFormat)
	}
}

// WriteFile stores m, picking the encoder from the file extension with the
// same mapping as ReadFile. The extension is validated before the file is
// created, so an unknown format leaves no empty file behind.
func WriteFile(path string, m *Matrix) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mtx", ".mm", ".bin", ".crs":
	default:
		return fmt.Errorf("WriteFile: %q: %w", path, ErrUnknownFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".mtx", ".mm":
		err = WriteMatrixMarket(f, m)
	case ".bin":
		err = WriteBinary(f, m)
	case ".crs":
		err = WriteText(f, m)
	}
	if err != nil {
		return err
	}

	return f.Close()
}
