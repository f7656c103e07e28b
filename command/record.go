package command

import (
	"fmt"

	"github.com/katalvlaran/lvlogic/idgen"
)

// Op tags which Command variant a Record reconstructs into, the persisted
// counterpart of circuit.Kind plus the two operations (Branch, Delete) that
// have no Component Kind of their own.
type Op string

const (
	OpCreateInputPin      Op = "CreateInputPin"
	OpCreateOutputPin     Op = "CreateOutputPin"
	OpCreatePrimitiveGate Op = "CreatePrimitiveGate"
	OpCreateBranch        Op = "CreateBranch"
	OpCreateGate          Op = "CreateGate"
	OpDeleteComponent     Op = "DeleteComponent"
)

// Record is the msgpack-encodable blueprint of one Command, carrying
// exactly the filled-in requirement values needed to rebuild it: each
// record is self-describing enough to be deserialised into a fresh,
// executable Command bound to the destination editor.
type Record struct {
	Op Op
	// ID is the identifier this record's Command produced when it first ran:
	// the component ID for a pin/gate create, the composite's ID for a
	// composite-gate create, the branch ID for a branch create. Replaying the
	// record reuses it verbatim (via CreateCommand's presetID or
	// CreateGateCommand's builtID) instead of minting a new one, so later records in the same
	// script that reference it by ID (a branch's Source/Sink) still resolve.
	ID          string `msgpack:",omitempty"`
	GateKind    string `msgpack:",omitempty"`
	Arity       int    `msgpack:",omitempty"`
	Source      string `msgpack:",omitempty"`
	OutSlot     int    `msgpack:",omitempty"`
	Sink        string `msgpack:",omitempty"`
	InSlot      int    `msgpack:",omitempty"`
	Description string `msgpack:",omitempty"`
	// SubCommands holds a CreateGateCommand's recorded construction script.
	SubCommands []Record `msgpack:",omitempty"`
}

// ToRecord renders a Command to its persisted blueprint. Only the three
// Command implementations in this package are supported; anything else is a
// programming error in a caller that built a custom Command.
func ToRecord(cmd Command) (Record, error) {
	switch c := cmd.(type) {
	case *CreateCommand:
		return c.toRecord(), nil
	case *DeleteCommand:
		return c.toRecord(), nil
	case *CreateGateCommand:
		rec := c.toRecord()
		rec.ID = c.builtID
		return rec, nil
	default:
		return Record{}, fmt.Errorf("command: %T: cannot be persisted", cmd)
	}
}

// FromRecord reconstructs a fresh, unexecuted Command from rec, using ids
// for any new IDs that Command's Execute will need to mint (CreateCommand
// variants only — DeleteCommand and a replayed CreateGateCommand reuse
// recorded IDs and need no generator).
func FromRecord(rec Record, ids *idgen.Counter) (Command, error) {
	switch rec.Op {
	case OpCreateInputPin:
		cmd := NewCreateInputPin(ids)
		cmd.presetID = rec.ID
		return cmd, nil
	case OpCreateOutputPin:
		cmd := NewCreateOutputPin(ids)
		cmd.presetID = rec.ID
		return cmd, nil
	case OpCreatePrimitiveGate:
		cmd := NewCreatePrimitiveGate(ids, rec.GateKind)
		if err := cmd.reqs.Set("arity", rec.Arity); err != nil {
			return nil, err
		}
		cmd.presetID = rec.ID
		return cmd, nil
	case OpCreateBranch:
		cmd := NewCreateBranch(ids)
		for key, val := range map[string]interface{}{
			"source": rec.Source, "outSlot": rec.OutSlot, "sink": rec.Sink, "inSlot": rec.InSlot,
		} {
			if err := cmd.reqs.Set(key, val); err != nil {
				return nil, err
			}
		}
		cmd.presetID = rec.ID
		return cmd, nil
	case OpCreateGate:
		cmd := NewCreateGateCommand(rec.SubCommands, rec.Description)
		cmd.builtID = rec.ID
		return cmd, nil
	case OpDeleteComponent:
		cmd := NewDeleteCommand()
		if err := cmd.reqs.Set("target", rec.Source); err != nil {
			return nil, err
		}
		return cmd, nil
	default:
		return nil, fmt.Errorf("command: unknown op %q", rec.Op)
	}
}
