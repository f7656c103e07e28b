// File: file.go
// Role: the two persistence-backed actions. Save frames the editor's
// command history into a .scad file; Open either replays such a file into
// the live editor (circuit mode) or wraps it as a composite-gate template
// (component mode) without touching the live circuit.
package action

import (
	"strings"

	"github.com/katalvlaran/lvlogic/command"
	"github.com/katalvlaran/lvlogic/editor"
	"github.com/katalvlaran/lvlogic/idgen"
	"github.com/katalvlaran/lvlogic/persistence"
	"github.com/katalvlaran/lvlogic/requirement"
)

// Open sub-modes, the values of the "mode" slot.
const (
	// ModeCircuit replaces the editor's content by replaying the file's
	// commands.
	ModeCircuit = "circuit"
	// ModeComponent registers the file's command list as a composite-gate
	// template, leaving the live editor untouched.
	ModeComponent = "component"
)

// Save serialises the bound editor's command history to a .scad file in
// the user-data directory and updates the editor's FileInfo on success.
type Save struct {
	base
	dir string
}

// NewSave returns a Save action operating under dir, with one "filename"
// slot (flat name, no path separators).
func NewSave(dir string) *Save {
	a := &Save{base: newBase(KindSave, "Save circuit"), dir: dir}
	a.reqs.Declare(requirement.Slot{Key: "filename", Kind: requirement.KindString, Predicate: requirement.Filename})
	return a
}

func (a *Save) Execute() error {
	return a.run(func(e *editor.Editor) error {
		filename, _ := a.reqs.GetString("filename")
		if !strings.HasSuffix(filename, persistence.Extension) {
			filename += persistence.Extension
		}

		history := e.History()
		records := make([]command.Record, 0, len(history))
		for _, cmd := range history {
			rec, err := command.ToRecord(cmd)
			if err != nil {
				return report(e, a.name, err)
			}
			records = append(records, rec)
		}
		if err := persistence.SaveFile(a.dir, filename, records); err != nil {
			return report(e, a.name, err)
		}
		e.FileInfo().SetFilename(filename)
		success(e, "Saved "+filename)
		return nil
	})
}

// Open reads a .scad file from the user-data directory. In circuit mode it
// clears the bound editor and replays the file's commands into it; in
// component mode it registers the command list as a composite-gate
// template named by the "gatename" slot (ignored in circuit mode, but the
// dialog always gathers it — defaulting it to the filename stem is the
// host's usual choice).
type Open struct {
	base
	dir string
}

// NewOpen returns an Open action operating under dir, with three slots:
// "filename" (enumerated, recomputed by AdjustRequirements), "mode"
// (circuit/component), and "gatename".
func NewOpen(dir string) *Open {
	a := &Open{base: newBase(KindOpen, "Open file"), dir: dir}
	a.reqs.Declare(requirement.Slot{Key: "filename", Kind: requirement.KindEnum})
	a.reqs.Declare(requirement.Slot{Key: "mode", Kind: requirement.KindEnum, Options: []string{ModeCircuit, ModeComponent}})
	a.reqs.Declare(requirement.Slot{Key: "gatename", Kind: requirement.KindString, Predicate: requirement.NonEmpty})
	return a
}

// AdjustRequirements refreshes the "filename" slot's options from the
// .scad files currently in the user-data directory.
func (a *Open) AdjustRequirements() error {
	files, err := persistence.ListFiles(a.dir)
	if err != nil {
		return err
	}
	return a.reqs.AdjustOptions("filename", files)
}

func (a *Open) Execute() error {
	return a.run(func(e *editor.Editor) error {
		filename, _ := a.reqs.GetString("filename")
		mode, _ := a.reqs.GetString("mode")
		gatename, _ := a.reqs.GetString("gatename")

		records, err := persistence.LoadFile(a.dir, filename)
		if err != nil {
			return report(e, a.name, err)
		}

		if mode == ModeComponent {
			e.AddCreateCommand(gatename, command.NewCreateGateCommand(records, gatename))
			success(e, "Loaded "+gatename+" as a component")
			return nil
		}

		e.Clear()
		ids := idgen.NewCounter(nil)
		for _, rec := range records {
			cmd, err := command.FromRecord(rec, ids)
			if err != nil {
				return report(e, a.name, err)
			}
			if err := e.Execute(cmd); err != nil {
				return report(e, a.name, err)
			}
		}
		e.FileInfo().SetFilename(filename)
		success(e, "Opened "+filename)
		return nil
	})
}
