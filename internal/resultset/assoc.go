package resultset

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tobsdb/rowset/internal/driver"
)

// FetchAssoc folds the whole result into a nested structure according to
// the descriptor, a comma-separated list of steps:
//
//	column  group rows by the column's value at this depth (map node)
//	#       append a slot per row at this depth (list node)
//	=       terminate: store the full row as a plain map
//	@       terminate: store the full row as an ordered Row
//
// "=" and "@" may only close the descriptor; when absent, "=" is implied.
// An empty descriptor yields a plain list of full rows. A descriptor made
// of only terminators yields a single record, the last row winning.
//
// The shape of the return value follows the descriptor: map[string]any for
// a grouping step, []any for "#", and a single map[string]any or
// *driver.Row for a bare terminator. Map keys are string-normalized, so
// values 1 and "1" group together. An empty result returns nil.
func (rs *ResultSet) FetchAssoc(descriptor string) (any, error) {
	if err := rs.Seek(0); err != nil {
		return nil, err
	}
	row, err := rs.Fetch()
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	steps, leaf, err := parseDescriptor(descriptor, row)
	if err != nil {
		return nil, err
	}

	root := &node{}
	for row != nil {
		slot := root
		for _, step := range steps {
			if step == "#" {
				slot = slot.appendSlot()
			} else {
				slot = slot.keySlot(formatKey(row.Get(step)))
			}
		}
		slot.setLeaf(row, leaf)

		if row, err = rs.Fetch(); err != nil {
			return nil, err
		}
	}
	return root.export(), nil
}

// parseDescriptor splits and validates the descriptor against the first
// fetched row and normalizes its trailing terminators.
func parseDescriptor(descriptor string, first *driver.Row) ([]string, leafKind, error) {
	var steps []string
	if descriptor != "" {
		steps = strings.Split(descriptor, ",")
	}

	for _, step := range steps {
		switch step {
		case "#", "=", "@":
		default:
			if !first.Has(step) {
				return nil, 0, unknownColumnError(step)
			}
		}
	}

	// strip the trailing run of terminators; the outermost one seen
	// decides the leaf kind
	leaf := leafAsMap
	explicit := false
	for len(steps) > 0 {
		last := steps[len(steps)-1]
		if last != "=" && last != "@" {
			break
		}
		if !explicit {
			explicit = true
			if last == "@" {
				leaf = leafAsRow
			}
		}
		steps = steps[:len(steps)-1]
	}

	for _, step := range steps {
		if step == "=" || step == "@" {
			return nil, 0, errors.WithMessagef(ErrInvalidArguments,
				"%q may only appear at the end of a descriptor", step)
		}
	}

	// no steps and no explicit terminator degenerates to a plain list
	// of full rows; with an explicit terminator it stays a single record
	if len(steps) == 0 && !explicit {
		steps = []string{"#"}
	}
	return steps, leaf, nil
}
