// Package storage provides blob storage operations with an Azure Blob Storage implementation.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/JaimeStill/newsdesk/pkg/lifecycle"
)

// System manages blob storage operations and lifecycle coordination.
type System interface {
	// Start registers a startup hook that initializes the storage container
	// and a readiness check that passes once the container exists.
	Start(lc *lifecycle.Coordinator) error
	// Ready reports whether the container has been initialized.
	Ready() bool
	// Upload streams data to a blob at the given key with the specified content type.
	// Returns ErrUnavailable until the container is ready.
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	// Download returns the blob at the given key. The caller must close Body.
	// Returns ErrNotFound if the blob does not exist.
	Download(ctx context.Context, key string) (*Blob, error)
}

// Blob is a downloaded blob stream with its content metadata.
type Blob struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

type azure struct {
	client    *azblob.Client
	container string
	logger    *slog.Logger
	ready     atomic.Bool
}

// New creates a storage system from the given configuration.
// It validates the connection string and creates the Azure client
// but does not establish a connection until Start is called.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	client, err := azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &azure{
		client:    client,
		container: cfg.ContainerName,
		logger:    logger.With("system", "storage"),
	}, nil
}

func (a *azure) Start(lc *lifecycle.Coordinator) error {
	a.logger.Info("starting storage system")
	lc.AddCheck("storage", a)

	lc.OnStartup(func() {
		_, err := a.client.CreateContainer(lc.Context(), a.container, nil)
		if err != nil {
			if !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
				a.logger.Error("storage container initialization failed", "error", err)
				return
			}
		}

		a.ready.Store(true)
		a.logger.Info("storage container ready", "container", a.container)
	})

	return nil
}

func (a *azure) Ready() bool {
	return a.ready.Load()
}

func (a *azure) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if !a.Ready() {
		return ErrUnavailable
	}

	opts := &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
		},
	}

	_, err := a.client.UploadStream(ctx, a.container, key, reader, opts)
	if err != nil {
		return fmt.Errorf("upload blob %s: %w", key, err)
	}

	return nil
}

func (a *azure) Download(ctx context.Context, key string) (*Blob, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if !a.Ready() {
		return nil, ErrUnavailable
	}

	resp, err := a.client.DownloadStream(ctx, a.container, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("download blob %s: %w", key, err)
	}

	result := &Blob{
		Body:        resp.Body,
		ContentType: "application/octet-stream",
	}
	if resp.ContentType != nil {
		result.ContentType = *resp.ContentType
	}
	if resp.ContentLength != nil {
		result.ContentLength = *resp.ContentLength
	}
	return result, nil
}

// ValidateKey rejects empty keys, absolute keys, and keys with ".." segments.
func ValidateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.HasPrefix(key, "/") {
		return ErrInvalidKey
	}
	for seg := range strings.SplitSeq(key, "/") {
		if seg == ".." {
			return ErrInvalidKey
		}
	}
	return nil
}
