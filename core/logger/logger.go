package logger

import (
	"fmt"

	"model-binder/core/binding"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	config, err := buildConfig(cfg)
	if err != nil {
		return nil, err
	}
	return config.Build()
}

// buildConfig starts from zap's development preset for debug and its
// production preset otherwise, then applies level and encoding.
func buildConfig(cfg *Config) (zap.Config, error) {
	config := zap.NewProductionConfig()
	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	}

	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return config, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		config.Level = level
	}

	switch cfg.Format {
	case "console":
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	case "", "json":
		config.Encoding = "json"
	default:
		return config, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"
	return config, nil
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("ray_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("ray_id", str))
	}
	return l
}

// ProblemFields renders a binding problem as log fields.
func ProblemFields(p binding.Problem) []zap.Field {
	fields := []zap.Field{zap.String("problem", p.ExceptionText)}
	if p.Property != nil {
		fields = append(fields, zap.String("property", p.Property.Name))
	}
	if p.Value != nil {
		fields = append(fields,
			zap.String("key", p.Value.RawKey),
			zap.String("source", p.Value.Source),
		)
	}
	if t := p.ItemType(); t != "" {
		fields = append(fields, zap.String("item_type", t))
	}
	return fields
}

// LogProblems writes one warning per problem under msg.
func LogProblems(l *zap.Logger, msg string, problems []binding.Problem) {
	for _, p := range problems {
		l.Warn(msg, ProblemFields(p)...)
	}
}
