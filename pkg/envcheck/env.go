package envcheck

import (
	"strings"

	"github.com/vertti/envpoke/pkg/envfile"
)

type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// Vars is an environment mapping. It is never mutated after construction.
type Vars map[string]string

func (v Vars) LookupEnv(key string) (string, bool) {
	val, ok := v[key]
	return val, ok
}

// Snapshot builds Vars from KEY=VALUE pairs as returned by os.Environ.
func Snapshot(environ []string) Vars {
	vars := make(Vars, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		vars[key] = value
	}
	return vars
}

// Merge returns a new mapping holding every key of env overlaid by every key
// of file. File values win on collision.
func Merge(env Vars, file *envfile.File) Vars {
	merged := make(Vars, len(env))
	for k, v := range env {
		merged[k] = v
	}
	if file == nil {
		return merged
	}
	for k, v := range file.Map() {
		merged[k] = v
	}
	return merged
}
