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

// Package oci publishes scaffold archives to OCI-compliant registries.
//
// A scaffold archive is pushed as a single-layer artifact using ORAS
// (OCI Registry As Storage). The manifest follows image-spec 1.1 and
// carries the artifact type:
//
//	application/vnd.easysh.scaffold.v1
//
// The one layer holds the zip bytes unchanged with media type
// application/zip and an org.opencontainers.image.title annotation set to
// the archive file name, so `oras pull` restores demo.zip as-is.
//
// # Targets
//
// Output targets use the oci:// scheme:
//
//	ref, err := oci.ParseOutputTarget("oci://ghcr.io/acme/scaffolds:v1")
//
// Anything without the scheme parses as a local path. Digest references
// are rejected because a push always produces a new tag.
//
// # Pushing
//
//	res, err := oci.Push(ctx, result.Data, oci.PushOptions{
//	    Reference: ref,
//	    Filename:  result.Filename,
//	    Version:   version,
//	})
//
// The artifact is packed in an in-memory store first and then copied to
// the remote repository. PushTo accepts any oras.Target, which lets
// callers pack into a local store or an OCI layout instead.
//
// The manifest creation annotation uses the fixed archive timestamp, so
// pushing the same archive twice yields the same manifest digest.
//
// # Authentication
//
// Credentials come from the Docker configuration (~/.docker/config.json)
// and its credential helpers. PlainHTTP targets local registries without
// TLS and InsecureTLS skips certificate verification.
package oci
