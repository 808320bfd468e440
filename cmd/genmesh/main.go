// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command genmesh generates procedural meshes and writes them
// as Wavefront OBJ or glTF files.
package main

import (
	"os"

	"github.com/csherratt/genmesh/base/errors"
)

func main() {
	if errors.Log(newRootCmd().Execute()) != nil {
		os.Exit(1)
	}
}
