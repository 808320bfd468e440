// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "boom | ")
	assert.Contains(t, buf.String(), "TestLog")

	buf.Reset()
	assert.Equal(t, 5, Log1(5, err))
	assert.Equal(t, 7, Log1(7, nil))
	assert.Contains(t, buf.String(), "boom")
}

func TestJoin(t *testing.T) {
	a, b := New("a"), New("b")
	err := Join(a, nil, b)
	assert.True(t, Is(err, a))
	assert.True(t, Is(err, b))
	assert.NoError(t, Join(nil, nil))
	assert.Panics(t, func() { Must(a) })
}
