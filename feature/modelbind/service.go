package modelbind

import (
	"context"

	"model-binder/core/binding"
	"model-binder/core/request"
	"model-binder/core/storage"

	"go.uber.org/zap"
)

// Result is the outcome of binding one model.
type Result struct {
	Model    string            `json:"model"`
	Value    any               `json:"value"`
	Problems []binding.Problem `json:"problems"`
}

// Service binds catalog models from request data or stored documents.
type Service struct {
	catalog *Catalog
	client  storage.Client
	storage storage.Config
	logger  *zap.Logger
	opts    []binding.Option
}

// NewService creates a new bind service. client may be nil, in which case
// BindObject is unavailable.
func NewService(catalog *Catalog, client storage.Client, cfg storage.Config, logger *zap.Logger, opts ...binding.Option) *Service {
	return &Service{
		catalog: catalog,
		client:  client,
		storage: cfg,
		logger:  logger,
		opts:    opts,
	}
}

// Catalog returns the catalog the service binds from.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Bind binds the model registered under name from data.
func (s *Service) Bind(name string, data request.Data) (*Result, error) {
	return s.bind(s.logger, name, data)
}

func (s *Service) bind(l *zap.Logger, name string, data request.Data) (*Result, error) {
	t, ok := s.catalog.Lookup(name)
	if !ok {
		return nil, NewUnknownModelError(name)
	}

	value, problems, err := binding.BindType(data, t, l, s.opts...)
	if err != nil {
		return nil, err
	}
	if problems == nil {
		problems = []binding.Problem{}
	}

	l.Info("Model bound",
		zap.String("model", name),
		zap.Int("problems", len(problems)),
	)
	return &Result{Model: name, Value: value, Problems: problems}, nil
}

// BindObject binds the model registered under name from a YAML or JSON
// document stored in the configured bucket. objectName is relative to the
// configured prefix.
func (s *Service) BindObject(ctx context.Context, name, objectName string) (*Result, error) {
	return s.bindObject(ctx, s.logger, name, objectName)
}

func (s *Service) bindObject(ctx context.Context, l *zap.Logger, name, objectName string) (*Result, error) {
	if _, ok := s.catalog.Lookup(name); !ok {
		return nil, NewUnknownModelError(name)
	}
	if s.client == nil {
		return nil, NewObjectError(objectName, storage.ErrNotConfigured)
	}

	key := s.storage.ObjectKey(objectName)
	data, err := request.FromObject(ctx, s.client, s.storage.Bucket, key)
	if err != nil {
		return nil, NewObjectError(key, err)
	}
	return s.bind(l.With(zap.String("object", objectName)), name, data)
}
