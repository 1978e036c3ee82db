package solvers

import (
	"fmt"
	"reflect"

	"github.com/knadh/koanf/v2"
)

// ConfigSolver rewrites values in a loaded vocabulary document, e.g.
// expanding ${path} references or evaluating {{ expr }} entries before the
// token lists are decoded.
type ConfigSolver interface {
	Solve(config *koanf.Koanf) *koanf.Koanf
}

func ToString(v any) string {
	return fmt.Sprintf("%v", reflect.ValueOf(v))
}

type delimiters struct {
	Start string
	End   string
}
