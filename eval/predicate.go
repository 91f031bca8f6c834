package eval

import (
	"fmt"

	"github.com/advaoptical/alpakka/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Predicate is a compiled boolean expression over the members of an
// object, as in `speed >= 1000 && enabled`.
type Predicate struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Predicate, error) {
	opts := append(exprOpts(), expr.AllowUndefinedVariables())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", src, err)
	}
	return &Predicate{src: src, prg: prg}, nil
}

func (p *Predicate) String() string { return p.src }

// Eval runs p against y. A nil result counts as false; any other non
// boolean result is an error.
func (p *Predicate) Eval(y *ir.Node) (bool, error) {
	res, err := vm.Run(p.prg, EntryEnv(y))
	if err != nil {
		return false, err
	}
	switch v := res.(type) {
	case bool:
		return v, nil
	case nil:
		return false, nil
	default:
		return false, fmt.Errorf("%q yields %T, not a boolean", p.src, res)
	}
}
