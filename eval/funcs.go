package eval

import (
	"os"
	"strings"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("hasprefix", func(params ...any) (any, error) {
			return strings.HasPrefix(params[0].(string), params[1].(string)), nil
		},
			new(func(string, string) bool)),
	}
}
