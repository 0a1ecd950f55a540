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

package oci

import (
	"bytes"
	"context"
	"crypto/tls"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"github.com/opencontainers/go-digest"
	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/memory"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/easysh/easysh/pkg/defaults"
	apperrors "github.com/easysh/easysh/pkg/errors"
)

const (
	// ArtifactType identifies easysh scaffold archives in a registry.
	ArtifactType = "application/vnd.easysh.scaffold.v1"
	// LayerMediaType is the media type of the single archive layer.
	LayerMediaType = "application/zip"
)

// PushOptions configures pushing an archive.
type PushOptions struct {
	// Reference is the destination; it must be an OCI reference with a tag.
	Reference *Reference
	// Filename becomes the layer title, e.g. "demo.zip".
	Filename string
	// Version is recorded as org.opencontainers.image.version.
	Version string
	// Annotations are merged over the default manifest annotations.
	Annotations map[string]string
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// PushResult describes a pushed artifact.
type PushResult struct {
	// Digest is the manifest digest.
	Digest string
	// Reference is registry/repository:tag.
	Reference string
	// Size is the archive layer size in bytes.
	Size int64
}

// Push uploads data as a single-layer OCI artifact to the registry named
// by opts.Reference, authenticating with Docker credentials when present.
func Push(ctx context.Context, data []byte, opts PushOptions) (*PushResult, error) {
	if err := checkOptions(opts); err != nil {
		return nil, err
	}

	repo, err := remote.NewRepository(opts.Reference.Registry + "/" + opts.Reference.Repository)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to initialize remote repository", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = createAuthClient(opts.PlainHTTP, opts.InsecureTLS)

	return PushTo(ctx, repo, data, opts)
}

// PushTo packs data into an in-memory store and copies the tagged
// manifest to dst.
func PushTo(ctx context.Context, dst oras.Target, data []byte, opts PushOptions) (*PushResult, error) {
	if err := checkOptions(opts); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "archive is empty")
	}

	store := memory.New()
	tag := opts.Reference.Tag

	manifest, err := pack(ctx, store, data, opts)
	if err != nil {
		return nil, err
	}
	if err := store.Tag(ctx, manifest, tag); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to tag manifest in local store", err)
	}

	slog.Info("pushing archive to registry",
		"reference", opts.Reference.ImageReference(),
		"size_bytes", len(data),
	)

	desc, err := oras.Copy(ctx, store, tag, dst, tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to push artifact to registry", err)
	}

	slog.Info("archive pushed", "reference", opts.Reference.ImageReference(), "digest", desc.Digest.String())

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: opts.Reference.ImageReference(),
		Size:      int64(len(data)),
	}, nil
}

func checkOptions(opts PushOptions) error {
	if opts.Reference == nil || !opts.Reference.IsOCI {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is required to push")
	}
	if opts.Reference.Tag == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "tag is required to push OCI artifact")
	}
	return nil
}

// pack pushes the layer and an OCI 1.1 artifact manifest into store.
// The created annotation is fixed so identical archives yield identical
// manifest digests.
func pack(ctx context.Context, store *memory.Store, data []byte, opts PushOptions) (ociv1.Descriptor, error) {
	layer := ociv1.Descriptor{
		MediaType: LayerMediaType,
		Digest:    digest.FromBytes(data),
		Size:      int64(len(data)),
	}
	if opts.Filename != "" {
		layer.Annotations = map[string]string{ociv1.AnnotationTitle: opts.Filename}
	}
	if err := store.Push(ctx, layer, bytes.NewReader(data)); err != nil {
		return ociv1.Descriptor{}, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to stage archive layer", err)
	}

	manifest, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, ArtifactType, oras.PackManifestOptions{
		Layers:              []ociv1.Descriptor{layer},
		ManifestAnnotations: manifestAnnotations(opts),
	})
	if err != nil {
		return ociv1.Descriptor{}, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to pack manifest", err)
	}
	return manifest, nil
}

func manifestAnnotations(opts PushOptions) map[string]string {
	a := map[string]string{
		ociv1.AnnotationCreated: defaults.ArchiveModTime.Format(time.RFC3339),
		ociv1.AnnotationVendor:  "easysh",
		ociv1.AnnotationTitle:   "easysh project scaffold",
	}
	if opts.Version != "" {
		a[ociv1.AnnotationVersion] = opts.Version
	}
	maps.Copy(a, opts.Annotations)
	return a
}

// createAuthClient creates an HTTP client with optional TLS configuration
// and Docker credential support.
func createAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, err := credentials.NewStoreFromDocker(credentials.StoreOptions{})
	if err != nil {
		slog.Debug("docker credentials unavailable, pushing anonymously", "error", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{} //nolint:gosec
		}
		transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
	}

	client := &auth.Client{
		Client: &http.Client{Transport: transport},
		Cache:  auth.NewCache(),
	}
	if credStore != nil {
		client.Credential = credentials.Credential(credStore)
	}
	return client
}
