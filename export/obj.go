// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes the meshes to w as a Wavefront OBJ file, with one
// object per mesh. Every vertex has its own position, texture
// coordinate and normal, so face elements use the same index for all
// three.
func WriteOBJ(w io.Writer, meshes ...Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Exported by genmesh")
	fmt.Fprintln(bw)

	offset := 0
	for _, m := range meshes {
		b := m.Buffers
		fmt.Fprintf(bw, "o %s\n", m.Name)

		nv := b.NumVertex()
		for i := range nv {
			v := b.At(i)
			fmt.Fprintf(bw, "v %f %f %f\n", v.Pos.X, v.Pos.Y, v.Pos.Z)
		}
		// OBJ texture v grows upward
		for i := range nv {
			v := b.At(i)
			fmt.Fprintf(bw, "vt %f %f\n", v.UV.X, 1-v.UV.Y)
		}
		for i := range nv {
			v := b.At(i)
			fmt.Fprintf(bw, "vn %f %f %f\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
		}

		// OBJ indices are 1-based and global across objects
		for t := range b.NumTriangles() {
			i0, i1, i2 := b.Triangle(t)
			i0 += offset + 1
			i1 += offset + 1
			i2 += offset + 1
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", i0, i0, i0, i1, i1, i1, i2, i2, i2)
		}
		offset += nv
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
