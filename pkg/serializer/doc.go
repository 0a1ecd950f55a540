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

// Package serializer moves structured data in and out of easysh.
//
// Output goes to stdout or a file as JSON, YAML, or a flattened table:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, listing); err != nil {
//		return err
//	}
//
// HTTP handlers answer with RespondJSON, which encodes the body before any
// header is written so a failed encoding never leaves a partial response:
//
//	serializer.RespondJSON(w, http.StatusOK, info)
//
// Configuration documents are read with ReadSource, which accepts a local
// path, "-" for stdin, or an http(s) URL fetched through HTTPReader.
package serializer
