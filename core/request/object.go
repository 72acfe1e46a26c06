package request

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"model-binder/core/storage"

	"github.com/minio/minio-go/v7"
)

// FromObject downloads a YAML or JSON document from object storage and
// flattens it like FromDocument. The source is labelled bucket/objectName.
func FromObject(ctx context.Context, client storage.Client, bucket, objectName string) (*MapData, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", objectName, err)
	}
	defer obj.Close()

	// Read first so storage errors keep their type for callers
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", objectName, err)
	}
	return FromDocument(bucket+"/"+objectName, bytes.NewReader(body))
}
