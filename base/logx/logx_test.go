// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))
	lg.Debug("this is debug")
	lg.Info("this is info", "view", "root")
	lg.Warn("this is warn")

	s := buf.String()
	assert.NotContains(t, s, "this is debug")
	assert.Contains(t, s, "this is info")
	assert.Contains(t, s, "view=root")
	assert.Contains(t, s, "this is warn")
	// a bytes.Buffer is not a terminal, so there is no color
	assert.Contains(t, s, "level=INFO")
}
