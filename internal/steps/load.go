// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package steps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/devbox/internal/ctxlog"
	"github.com/spf13/afero"
)

// ErrFetch is returned when a steps file cannot be read or downloaded.
var ErrFetch = errors.New("failed to get steps file")

// FsFactory returns the filesystem used by LoadFile and Resolve.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// LoadFile reads and loads a steps file from the local filesystem.
func LoadFile(ctx context.Context, path string) ([]Definition, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	return Load(ctx, data)
}

// Resolve loads the steps from location.
// An empty location gives the embedded defaults, an existing local path is read directly
// and anything else is treated as a go-getter URL.
func Resolve(ctx context.Context, location string) ([]Definition, error) {
	if location == "" {
		ctxlog.Debug(ctx, "using embedded steps")
		return Default(ctx)
	}

	if ok, _ := afero.Exists(FsFactory(), location); ok {
		ctxlog.Debug(ctx, "loading steps file", "path", location)
		return LoadFile(ctx, location)
	}

	ctxlog.Debug(ctx, "fetching steps file", "url", location)

	data, err := Fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	return Load(ctx, data)
}

// Fetch downloads the content at url using Hashicorp's go-getter.
// The download happens in a temporary directory that is removed afterwards.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrFetch
	}

	tmpDir, err := os.MkdirTemp("", "devbox-getter-*")
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string

	// Remote sources are fetched as a directory and the file is read from it afterwards.
	// https://github.com/hashicorp/go-getter/issues/98
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return nil, errors.Join(ErrFetch, err)
		}

		var dirURL string

		dirURL, fileName = splitGetterURL(url)
		if dirURL == "" || fileName == "" {
			return nil, fmt.Errorf("%w: invalid URL format: %s", ErrFetch, url)
		}

		req.Src = dirURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	return data, nil
}

const (
	getterPathSeparator = "//"
	getterRefSeparator  = "?"
	minimumGetterParts  = 3 // scheme, host and path
)

// splitGetterURL removes the file name from a go-getter URL, keeping any query string.
// It returns the directory URL and the file name, or two empty strings if there is no file name.
func splitGetterURL(url string) (string, string) {
	parts := strings.Split(url, getterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]

	var query string
	if before, after, found := strings.Cut(last, getterRefSeparator); found {
		last, query = before, after
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)

	if dir := filepath.Dir(last); dir == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	dirURL := strings.Join(parts, getterPathSeparator)
	if query != "" {
		dirURL += getterRefSeparator + query
	}

	return dirURL, fileName
}
