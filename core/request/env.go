package request

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// SourceEnv labels values read from the environment or .env files.
const SourceEnv = "env"

var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_", "[", "_", "]", "")

// EnvData exposes environment variables under binding keys:
// "server.port" is looked up as SERVER_PORT (with the optional prefix).
type EnvData struct {
	prefix string
	values *MapData
}

// FromEnv snapshots the process environment. Variables from files (dotenv
// format) are added underneath it: the process environment wins.
// Missing files are an error.
func FromEnv(prefix string, files ...string) (*EnvData, error) {
	values := make(map[string]any)
	if len(files) > 0 {
		fromFiles, err := godotenv.Read(files...)
		if err != nil {
			return nil, fmt.Errorf("failed to read env files: %w", err)
		}
		for k, v := range fromFiles {
			values[k] = v
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		values[k] = v
	}
	return NewEnvData(prefix, values), nil
}

// NewEnvData creates an EnvData over an explicit set of variables.
func NewEnvData(prefix string, vars map[string]any) *EnvData {
	return &EnvData{prefix: strings.ToUpper(prefix), values: NewMapData(SourceEnv, vars)}
}

// EnvKey returns the variable name key is looked up under.
func (e *EnvData) EnvKey(key string) string {
	return e.prefix + strings.ToUpper(envKeyReplacer.Replace(key))
}

// Value implements Data.
func (e *EnvData) Value(key string) (BindingValue, bool) {
	return e.values.Value(e.EnvKey(key))
}

// HasAnyValuePrefixedWith implements Data.
func (e *EnvData) HasAnyValuePrefixedWith(prefix string) bool {
	return e.values.HasAnyValuePrefixedWith(e.EnvKey(prefix))
}

// SubRequest implements Data.
func (e *EnvData) SubRequest(prefix string) Data {
	return newPrefixed(e, prefix)
}
