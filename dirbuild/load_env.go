package dirbuild

import (
	"fmt"
	"os"

	"github.com/signadot/tony-format/go-conf/debug"
	"github.com/signadot/tony-format/go-conf/ir"
	"github.com/signadot/tony-format/go-conf/parse"
)

const (
	EnvEnv = "CONF_OVERRIDE"
)

// LoadEnv parses the override document held in $CONF_OVERRIDE, such as
// '{robot: {max_vel: 0.2}}'. It returns nil when the variable is unset.
func LoadEnv() (*ir.Node, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	yEnv, err := parse.Parse([]byte(envEnv))
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	if yEnv.Kind() != ir.MapKind {
		return nil, fmt.Errorf("error decoding env $%s: wrong kind %s", EnvEnv, yEnv.Kind())
	}
	if debug.Load() {
		debug.Logf("\nloaded override from env: %v\n", yEnv)
	}
	return yEnv, nil
}
