// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/MKhiriev/go-calcufit/models"
)

// maxImageBytes bounds photos sent inline to the estimator.
const maxImageBytes = 8 << 20

var errNotAnImage = errors.New("file is not an image")

// loadImage reads the photo at path. An empty path yields nil.
func loadImage(path string) (*models.EstimateImage, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxImageBytes {
		return nil, fmt.Errorf("image too large: %d bytes", info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("%w: %s", errNotAnImage, mime)
	}

	return &models.EstimateImage{MIMEType: mime, Data: data}, nil
}
