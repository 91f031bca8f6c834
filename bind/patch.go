package bind

import (
	"fmt"

	"github.com/advaoptical/alpakka/debug"
	"github.com/advaoptical/alpakka/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 JSON patch to the backing store of n.
// Pointers are relative to n's own object and use store keys as they are.
// The store is replaced in place, so views sharing it see the result.
func (n *Instance) ApplyPatch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("could not decode patch: %w", err)
	}
	doc, err := ir.ToJSON(n.store)
	if err != nil {
		return err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return fmt.Errorf("could not apply patch at %s: %w", n.path, err)
	}
	res, err := ir.FromJSON(out)
	if err != nil {
		return err
	}
	if err := expectObject(res, n.path); err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("patch %s: %v\n", n.path, res)
	}
	n.store.Assign(res)
	return nil
}
