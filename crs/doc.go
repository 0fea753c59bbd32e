// SPDX-License-Identifier: MIT

// Package crs implements validated compressed-row sparse matrix storage
// (CRS, a.k.a. CSR) together with the file formats the rest of lvlsparse
// consumes: MatrixMarket text, a raw binary layout and a whitespace-text
// layout.
//
// Storage contract
//
//	A Matrix is an immutable view over three parallel arrays:
//	  rowPtr[0..rows]   — monotonic non-decreasing, rowPtr[0]=0, rowPtr[rows]=nnz
//	  colInd[0..nnz)    — each entry in [0, cols)
//	  values[0..nnz)    — one scalar per structural entry
//	Row i occupies the half-open range [rowPtr[i], rowPtr[i+1]) of
//	colInd/values. Within a row, column order is whatever the producer
//	emitted — callers must not assume sorted rows unless they normalized
//	them explicitly.
//
// All invariants are enforced at construction time by New; a Matrix that
// exists is valid. Readers funnel through the same constructor, so a file
// that decodes successfully always yields a valid Matrix.
//
// The block variant (BlockMatrix) layers a fixed BlockDim×BlockDim dense
// tile over every structural entry; it scales row/column counts accordingly
// and expands back to plain CRS via Expand.
//
// Complexity:
//
//   - New:        O(rows + nnz) validation, no copies of the input slices
//   - Row access: O(1) subslice
//   - I/O:        O(nnz log nnz) for MatrixMarket (COO sort), O(nnz) otherwise
package crs
