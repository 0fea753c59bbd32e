// SPDX-License-Identifier: MIT
// Package crs: MatrixMarket (.mtx/.mm) reader and writer.
//
// Supported grammar (header fields are case-insensitive):
//
//	%%MatrixMarket matrix coordinate|array real|double|integer|pattern \
//	               general|symmetric|skew-symmetric
//
// Contract:
//   - complex fields and hermitian symmetry are recognized and rejected with
//     ErrUnsupportedField (lvlsparse stores float64 only).
//   - coordinate entries are 1-based; symmetric/skew-symmetric files are
//     expanded on read (off-diagonal mirror, sign-flipped for skew).
//   - pattern files decode every entry as 1.0.
//   - diagonal entries are kept; the symbolic ILU phase requires them.
//   - entries are assembled row-by-row with a stable counting sort, so the
//     stored column order inside a row is the file order.

package crs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MatrixMarket header enums, mirroring the classical format specification.
type (
	mtxFormat int
	mtxField  int
	mtxSym    int
)

const (
	formatCoordinate mtxFormat = iota
	formatArray
)

const (
	fieldReal mtxField = iota
	fieldInteger
	fieldPattern
)

const (
	symGeneral mtxSym = iota
	symSymmetric
	symSkewSymmetric
)

const mtxBanner = "%%MatrixMarket"

// ReadMatrixMarket decodes a MatrixMarket stream into a Matrix.
func ReadMatrixMarket(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1<<16), 1<<22)

	// 1) Banner line.
	if !sc.Scan() {
		return nil, fmt.Errorf("ReadMatrixMarket: empty stream: %w", ErrBadHeader)
	}
	format, field, sym, err := parseBanner(sc.Text())
	if err != nil {
		return nil, err
	}

	// 2) Skip comments, then the size line.
	var sizeLine string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		sizeLine = line
		break
	}
	if sizeLine == "" {
		return nil, fmt.Errorf("ReadMatrixMarket: missing size line: %w", ErrBadHeader)
	}
	nr, nc, nnz, err := parseSizeLine(sizeLine, format)
	if err != nil {
		return nil, err
	}
	if sym != symGeneral && nr != nc {
		return nil, fmt.Errorf("ReadMatrixMarket: %dx%d: %w", nr, nc, ErrNonSymmetrizable)
	}

	// 3) Decode entries into COO triplets (expanding symmetry as we go).
	cooR := make([]int, 0, nnz)
	cooC := make([]int, 0, nnz)
	cooV := make([]float64, 0, nnz)
	for k := 0; k < nnz; k++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("ReadMatrixMarket: entry %d of %d missing: %w", k+1, nnz, ErrBadEntry)
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			k-- // tolerate stray blank lines between entries
			continue
		}
		i, j, v, entryErr := parseEntry(line, k, nr, format, field)
		if entryErr != nil {
			return nil, entryErr
		}
		if i < 0 || i >= nr || j < 0 || j >= nc {
			return nil, fmt.Errorf("ReadMatrixMarket: entry (%d,%d) outside %dx%d: %w",
				i+1, j+1, nr, nc, ErrBadEntry)
		}
		cooR = append(cooR, i)
		cooC = append(cooC, j)
		cooV = append(cooV, v)
		if sym != symGeneral && i != j {
			mirror := v
			if sym == symSkewSymmetric {
				mirror = -v
			}
			cooR = append(cooR, j)
			cooC = append(cooC, i)
			cooV = append(cooV, mirror)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadMatrixMarket: %w", err)
	}

	return assembleCOO(nr, nc, cooR, cooC, cooV)
}

// WriteMatrixMarket encodes m as "matrix coordinate real general" with
// 1-based indices and full float64 precision.
func WriteMatrixMarket(w io.Writer, m *Matrix) error {
	if m == nil {
		return fmt.Errorf("WriteMatrixMarket: %w", ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s matrix coordinate real general\n", mtxBanner); err != nil {
		return fmt.Errorf("WriteMatrixMarket: %w", err)
	}
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", m.rows, m.cols, m.NNZ()); err != nil {
		return fmt.Errorf("WriteMatrixMarket: %w", err)
	}
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if _, err := fmt.Fprintf(bw, "%d %d %.17g\n", i+1, m.colInd[k]+1, m.values[k]); err != nil {
				return fmt.Errorf("WriteMatrixMarket: %w", err)
			}
		}
	}

	return bw.Flush()
}

// parseBanner decodes the %%MatrixMarket line into format/field/symmetry.
func parseBanner(line string) (mtxFormat, mtxField, mtxSym, error) {
	toks := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(toks) < 4 || toks[0] != strings.ToLower(mtxBanner) {
		return 0, 0, 0, fmt.Errorf("parseBanner: %q: %w", line, ErrBadHeader)
	}
	if toks[1] != "matrix" {
		// "vector" is a valid MatrixMarket object we deliberately do not read.
		return 0, 0, 0, fmt.Errorf("parseBanner: object %q: %w", toks[1], ErrUnsupportedField)
	}

	var format mtxFormat
	switch toks[2] {
	case "coordinate":
		format = formatCoordinate
	case "array":
		format = formatArray
	default:
		return 0, 0, 0, fmt.Errorf("parseBanner: format %q: %w", toks[2], ErrBadHeader)
	}

	var field mtxField
	switch toks[3] {
	case "real", "double":
		field = fieldReal
	case "integer":
		field = fieldInteger
	case "pattern":
		field = fieldPattern
	case "complex":
		return 0, 0, 0, fmt.Errorf("parseBanner: field %q: %w", toks[3], ErrUnsupportedField)
	default:
		return 0, 0, 0, fmt.Errorf("parseBanner: field %q: %w", toks[3], ErrBadHeader)
	}

	sym := symGeneral
	if len(toks) >= 5 {
		switch toks[4] {
		case "general":
			sym = symGeneral
		case "symmetric":
			sym = symSymmetric
		case "skew-symmetric":
			sym = symSkewSymmetric
		case "hermitian":
			return 0, 0, 0, fmt.Errorf("parseBanner: symmetry %q: %w", toks[4], ErrUnsupportedField)
		default:
			return 0, 0, 0, fmt.Errorf("parseBanner: symmetry %q: %w", toks[4], ErrBadHeader)
		}
	} else if format == formatCoordinate {
		return 0, 0, 0, fmt.Errorf("parseBanner: missing symmetry: %w", ErrBadHeader)
	}

	// Array format constraints: dense layout cannot be pattern or symmetric.
	if format == formatArray {
		if field == fieldPattern {
			return 0, 0, 0, fmt.Errorf("parseBanner: array+pattern: %w", ErrBadHeader)
		}
		if sym != symGeneral {
			return 0, 0, 0, fmt.Errorf("parseBanner: array with symmetry: %w", ErrUnsupportedField)
		}
	}

	return format, field, sym, nil
}

// parseSizeLine decodes "nr nc [nnz]" after the comment block.
func parseSizeLine(line string, format mtxFormat) (nr, nc, nnz int, err error) {
	toks := strings.Fields(line)
	want := 3
	if format == formatArray {
		want = 2
	}
	if len(toks) != want {
		return 0, 0, 0, fmt.Errorf("parseSizeLine: %q: %w", line, ErrBadHeader)
	}
	if nr, err = strconv.Atoi(toks[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("parseSizeLine: rows %q: %w", toks[0], ErrBadHeader)
	}
	if nc, err = strconv.Atoi(toks[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("parseSizeLine: cols %q: %w", toks[1], ErrBadHeader)
	}
	if format == formatArray {
		nnz = nr * nc
	} else if nnz, err = strconv.Atoi(toks[2]); err != nil {
		return 0, 0, 0, fmt.Errorf("parseSizeLine: nnz %q: %w", toks[2], ErrBadHeader)
	}
	if nr < 0 || nc < 0 || nnz < 0 {
		return 0, 0, 0, fmt.Errorf("parseSizeLine: %q: %w", line, ErrBadHeader)
	}

	return nr, nc, nnz, nil
}

// parseEntry decodes the k-th data line into 0-based (i, j, v).
func parseEntry(line string, k, nr int, format mtxFormat, field mtxField) (i, j int, v float64, err error) {
	toks := strings.Fields(line)
	if format == formatArray {
		// Dense entries are listed column-major; position alone fixes (i, j).
		i = k % nr
		j = k / nr
		if len(toks) != 1 {
			return 0, 0, 0, fmt.Errorf("parseEntry: %q: %w", line, ErrBadEntry)
		}
		if v, err = strconv.ParseFloat(toks[0], 64); err != nil {
			return 0, 0, 0, fmt.Errorf("parseEntry: value %q: %w", toks[0], ErrBadEntry)
		}
		return i, j, v, nil
	}

	wantToks := 3
	if field == fieldPattern {
		wantToks = 2
	}
	if len(toks) != wantToks {
		return 0, 0, 0, fmt.Errorf("parseEntry: %q: %w", line, ErrBadEntry)
	}
	if i, err = strconv.Atoi(toks[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("parseEntry: row %q: %w", toks[0], ErrBadEntry)
	}
	if j, err = strconv.Atoi(toks[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("parseEntry: col %q: %w", toks[1], ErrBadEntry)
	}
	if field == fieldPattern {
		v = 1
	} else if v, err = strconv.ParseFloat(toks[2], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("parseEntry: value %q: %w", toks[2], ErrBadEntry)
	}

	return i - 1, j - 1, v, nil
}

// assembleCOO builds a Matrix from triplets via a stable counting sort on
// the row coordinate. Column order within a row is the triplet order.
func assembleCOO(rows, cols int, cooR, cooC []int, cooV []float64) (*Matrix, error) {
	ptr := make([]int, rows+1)
	for _, i := range cooR {
		ptr[i+1]++
	}
	for i := 0; i < rows; i++ {
		ptr[i+1] += ptr[i]
	}
	ind := make([]int, len(cooC))
	val := make([]float64, len(cooV))
	cursor := make([]int, rows)
	copy(cursor, ptr[:rows])
	for k := range cooR {
		p := cursor[cooR[k]]
		ind[p] = cooC[k]
		val[p] = cooV[k]
		cursor[cooR[k]]++
	}

	return New(rows, cols, ptr, ind, val)
}
