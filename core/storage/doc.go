// Package storage provides access to input documents kept in object storage.
//
// It wraps the MinIO Go client, which works against both AWS S3 and
// self-hosted MinIO instances. Only the operations the binder needs are
// exposed: checking the bucket and downloading a document that is then
// parsed by request.FromObject.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider so that
// tests can substitute core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.Ping(ctx, client, cfg.Storage.Bucket)
package storage
