// Package readers implements the minimal concrete reader the core library's
// §6.1 reader contract expects: something that has done its own I/O and
// hands the core a populated store. This is explicitly out of the core's
// scope; it exists so cmd/molcli is runnable end to end
// over a real file format rather than only over hand-built test fixtures.
package readers

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/molpp-go/molpp/dssp"
	"github.com/molpp-go/molpp/internal/fsutil"
	"github.com/molpp-go/molpp/mol"
	"gonum.org/v1/gonum/spatial/r3"
)

// Status mirrors the reader contract's small status enum.
type Status int

const (
	StatusSuccess Status = iota
	StatusInvalid
	StatusWrongAtoms
	StatusEnd
	StatusFailed
)

// Capabilities reports what a reader can produce.
type Capabilities struct {
	HasTopology           bool
	HasTrajectory         bool
	HasBonds              bool
	HasTrajectoryMetadata bool
}

type pdbAtom struct {
	name    string
	resName string
	resID   int32
	chainID string
	element string
}

// PDBReader reads a minimal subset of the PDB format: ATOM/HETATM records,
// MODEL/ENDMDL-delimited frames. No secondary structure, CONECT, or header
// metadata records are interpreted.
type PDBReader struct {
	atoms  []pdbAtom
	frames [][]r3.Vec
	next   int
}

// Capabilities reports this reader's fixed capability set.
func (r *PDBReader) Capabilities() Capabilities {
	return Capabilities{HasTopology: true, HasTrajectory: true}
}

// Open parses path in full using the real filesystem. See OpenFS to read
// from an injected fsutil.FileSystem, e.g. an in-memory one in tests.
func Open(path string) (*PDBReader, Status) {
	return OpenFS(fsutil.OSFileSystem{}, path)
}

// OpenFS parses path in full via fsys: the minimal reader this library
// builds its CLI on eagerly loads the whole file rather than streaming,
// trading memory for simplicity.
func OpenFS(fsys fsutil.FileSystem, path string) (*PDBReader, Status) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, StatusFailed
	}
	defer f.Close()

	r := &PDBReader{}
	seenAtoms := make(map[string]int) // "chain/resid/name" -> index in r.atoms, first model only
	var curFrame []r3.Vec
	inModel := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 6 {
			continue
		}
		record := strings.TrimRight(line[:6], " ")
		switch record {
		case "MODEL":
			inModel = true
			curFrame = nil
		case "ATOM", "HETATM":
			a, pos, perr := parseAtomLine(line)
			if perr != nil {
				continue
			}
			key := fmt.Sprintf("%s/%d/%s", a.chainID, a.resID, a.name)
			if _, ok := seenAtoms[key]; !ok {
				// Same atom order is assumed across MODEL blocks, as is
				// conventional for multi-model PDB trajectories.
				seenAtoms[key] = len(r.atoms)
				r.atoms = append(r.atoms, a)
			}
			curFrame = append(curFrame, pos)
		case "ENDMDL":
			r.frames = append(r.frames, curFrame)
			curFrame = nil
			inModel = false
		case "END":
			// no-op; frames are flushed at ENDMDL or EOF below.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, StatusFailed
	}
	if !inModel && curFrame != nil {
		r.frames = append(r.frames, curFrame)
	}
	if len(r.atoms) == 0 {
		return nil, StatusInvalid
	}
	return r, StatusSuccess
}

// Close releases reader resources. PDBReader holds none beyond what Open
// already closed, so this is a no-op kept for contract symmetry.
func (r *PDBReader) Close() {}

// ReadTopology builds a store sized to this reader's atoms, with residues
// grouped by (chain, resid) in first-appearance order, and every static
// property populated. Position is registered but left with zero frames;
// call ReadNextTimestep to append coordinate frames.
func (r *PDBReader) ReadTopology() (*mol.Store, error) {
	store := mol.NewStore(len(r.atoms))

	type residueKey struct {
		chain string
		resID int32
	}
	var order []residueKey
	seen := make(map[residueKey]int32)
	residueOfAtom := make([]int32, len(r.atoms))
	resNameOf := make(map[residueKey]string)

	for i, a := range r.atoms {
		key := residueKey{chain: a.chainID, resID: a.resID}
		idx, ok := seen[key]
		if !ok {
			idx = int32(len(order))
			seen[key] = idx
			order = append(order, key)
			resNameOf[key] = a.resName
		}
		residueOfAtom[i] = idx
	}
	store.RegisterResidues(len(order))

	if _, err := mol.AddProperty[string](store.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropName}, false, len(r.atoms)); err != nil {
		return nil, err
	}
	names, _ := mol.PropertyAt[string](store.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropName}, 0)
	if _, err := mol.AddProperty[int32](store.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropAtomicNumber}, false, len(r.atoms)); err != nil {
		return nil, err
	}
	atomicNumbers, _ := mol.PropertyAt[int32](store.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropAtomicNumber}, 0)
	if _, err := mol.AddProperty[int32](store.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropResID}, false, len(r.atoms)); err != nil {
		return nil, err
	}
	atomResIDs, _ := mol.PropertyAt[int32](store.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropResID}, 0)

	if _, err := mol.AddProperty[string](store.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: mol.PropResName}, false, len(order)); err != nil {
		return nil, err
	}
	resNames, _ := mol.PropertyAt[string](store.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: mol.PropResName}, 0)
	if _, err := mol.AddProperty[int32](store.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: mol.PropResID}, false, len(order)); err != nil {
		return nil, err
	}
	resIDs, _ := mol.PropertyAt[int32](store.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: mol.PropResID}, 0)
	if _, err := mol.AddProperty[string](store.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: dssp.PropChainID}, false, len(order)); err != nil {
		return nil, err
	}
	chainIDs, _ := mol.PropertyAt[string](store.Properties(), mol.PropertyKey{Kind: mol.KindResidue, Name: dssp.PropChainID}, 0)

	if _, err := mol.AddProperty[r3.Vec](store.Properties(), mol.PropertyKey{Kind: mol.KindAtom, Name: mol.PropPosition}, true, len(r.atoms)); err != nil {
		return nil, err
	}

	for i, a := range r.atoms {
		names[i] = a.name
		atomicNumbers[i] = elementNumber(a.element, a.name)
		atomResIDs[i] = a.resID
		if err := store.SetResidueID(int32(i), residueOfAtom[i]); err != nil {
			return nil, err
		}
	}
	for i, key := range order {
		resNames[i] = resNameOf[key]
		resIDs[i] = key.resID
		chainIDs[i] = key.chain
	}

	return store, nil
}

// ReadNextTimestep appends the next parsed frame's coordinates to store.
// Returns StatusWrongAtoms if the frame's atom count disagrees with the
// store's, StatusEnd once every frame has been consumed.
func (r *PDBReader) ReadNextTimestep(store *mol.Store) Status {
	if r.next >= len(r.frames) {
		return StatusEnd
	}
	frame := r.frames[r.next]
	n, err := store.SizeOfKind(mol.KindAtom)
	if err != nil || len(frame) != n {
		return StatusWrongAtoms
	}
	f := store.AddFrame()
	positions, err := store.PositionsAt(f)
	if err != nil {
		return StatusFailed
	}
	copy(positions, frame)
	r.next++
	return StatusSuccess
}

// SkipNextTimestep advances past the next frame without appending it.
func (r *PDBReader) SkipNextTimestep() Status {
	if r.next >= len(r.frames) {
		return StatusEnd
	}
	r.next++
	return StatusSuccess
}

// ReadTrajectory composes ReadNextTimestep/SkipNextTimestep over
// [begin, end) with the given step; begin clamps to 0, step clamps to >= 1,
// end == -1 means "until EOF".
func ReadTrajectory(r *PDBReader, store *mol.Store, begin, end, step int) error {
	if begin < 0 {
		begin = 0
	}
	if step < 1 {
		step = 1
	}
	for i := 0; end < 0 || i < end; i++ {
		want := i >= begin && (i-begin)%step == 0
		var status Status
		if want {
			status = r.ReadNextTimestep(store)
		} else {
			status = r.SkipNextTimestep()
		}
		if status == StatusEnd {
			return nil
		}
		if status != StatusSuccess {
			return fmt.Errorf("readers: trajectory step %d: status %d", i, status)
		}
	}
	return nil
}

func parseAtomLine(line string) (pdbAtom, r3.Vec, error) {
	if len(line) < 54 {
		return pdbAtom{}, r3.Vec{}, fmt.Errorf("readers: short ATOM/HETATM line")
	}
	name := strings.TrimSpace(line[12:16])
	resName := strings.TrimSpace(line[17:20])
	chainID := strings.TrimSpace(line[21:22])
	resIDStr := strings.TrimSpace(line[22:26])
	resID, err := strconv.Atoi(resIDStr)
	if err != nil {
		return pdbAtom{}, r3.Vec{}, err
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	if err != nil {
		return pdbAtom{}, r3.Vec{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	if err != nil {
		return pdbAtom{}, r3.Vec{}, err
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	if err != nil {
		return pdbAtom{}, r3.Vec{}, err
	}
	element := ""
	if len(line) >= 78 {
		element = strings.TrimSpace(line[76:78])
	}
	return pdbAtom{name: name, resName: resName, resID: int32(resID), chainID: chainID, element: element}, r3.Vec{X: x, Y: y, Z: z}, nil
}

var elementNumbers = map[string]int32{
	"H": 1, "C": 6, "N": 7, "O": 8, "P": 15, "S": 16,
	"MG": 12, "CL": 17, "CA": 20, "FE": 26, "ZN": 30,
}

// elementNumber resolves an atomic number from the element column if
// present, else falls back to the first one or two letters of the atom
// name (a common PDB convention for files lacking column 77-78 data).
func elementNumber(element, atomName string) int32 {
	if element != "" {
		if z, ok := elementNumbers[strings.ToUpper(element)]; ok {
			return z
		}
	}
	name := strings.TrimLeft(atomName, "0123456789")
	if len(name) >= 2 {
		if z, ok := elementNumbers[strings.ToUpper(name[:2])]; ok {
			return z
		}
	}
	if len(name) >= 1 {
		if z, ok := elementNumbers[strings.ToUpper(name[:1])]; ok {
			return z
		}
	}
	return 0
}
