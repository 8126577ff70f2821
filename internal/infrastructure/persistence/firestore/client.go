// Package firestore implements the document store on Cloud Firestore.
package firestore

import (
	"context"
	"fmt"

	gcfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.opentelemetry.io/otel"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"film-forge-api/internal/config"
	"film-forge-api/internal/domain/repository"
)

var tracer = otel.Tracer("firestore")

// Client wraps a Firestore client bound to the configured project.
type Client struct {
	fs     *gcfirestore.Client
	config *config.FirestoreConfig
}

// NewClient initializes a Firebase app and opens its Firestore client.
// Without a credentials file, application default credentials are used.
func NewClient(ctx context.Context, cfg *config.FirestoreConfig) (*Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase app: %w", err)
	}
	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open firestore client: %w", err)
	}

	return &Client{fs: fs, config: cfg}, nil
}

// Firestore returns the underlying client.
func (c *Client) Firestore() *gcfirestore.Client {
	return c.fs
}

func (c *Client) Close() error {
	return c.fs.Close()
}

// HealthCheck reads a missing document; NotFound proves the backend is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "firestore.HealthCheck")
	defer span.End()

	_, err := c.fs.Collection(c.config.AssetCollection).Doc("_health").Get(ctx)
	if err == nil || status.Code(err) == codes.NotFound {
		return nil
	}
	span.RecordError(err)
	return fmt.Errorf("health check failed: %w", err)
}

func mapError(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return repository.ErrNotFound
	case codes.AlreadyExists:
		return repository.ErrAlreadyExists
	default:
		return err
	}
}
