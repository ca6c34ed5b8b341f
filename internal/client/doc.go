// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pdfplace Authors

// Package client implements the interactive application runtime.
//
// It wires the terminal UI, catalog services, and background workers into a
// single process lifecycle.
package client
