// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/easysh/easysh/pkg/defaults"
)

// StdinSource names standard input as a document source.
const StdinSource = "-"

// IsRemote reports whether location is an http(s) URL.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// ReadSource loads a document from a local path, stdin ("-"), or an
// http(s) URL. Remote fetches use reader, or a default HTTPReader when nil.
func ReadSource(ctx context.Context, location string, reader *HTTPReader) ([]byte, error) {
	location = strings.TrimSpace(location)
	switch {
	case location == "":
		return nil, fmt.Errorf("no source given")
	case location == StdinSource:
		return readLimited(os.Stdin, defaults.MaxRequestBodyBytes)
	case IsRemote(location):
		if reader == nil {
			reader = NewHTTPReader()
		}
		return reader.ReadWithContext(ctx, location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", location, err)
	}
	defer f.Close()

	data, err := readLimited(f, defaults.MaxRequestBodyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return data, nil
}
