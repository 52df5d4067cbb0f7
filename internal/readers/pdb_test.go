package readers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/molpp-go/molpp/internal/fsutil"
	"github.com/molpp-go/molpp/mol"
)

const twoModelPDB = `MODEL        1
ATOM      1  N   ALA A   1      11.104  13.207   2.075  1.00  0.00           N
ATOM      2  CA  ALA A   1      11.797  13.224   3.359  1.00  0.00           C
ATOM      3  C   ALA A   1      13.264  13.611   3.158  1.00  0.00           C
ATOM      4  O   ALA A   1      13.612  14.215   2.140  1.00  0.00           O
ENDMDL
MODEL        2
ATOM      1  N   ALA A   1      11.204  13.307   2.175  1.00  0.00           N
ATOM      2  CA  ALA A   1      11.897  13.324   3.459  1.00  0.00           C
ATOM      3  C   ALA A   1      13.364  13.711   3.258  1.00  0.00           C
ATOM      4  O   ALA A   1      13.712  14.315   2.240  1.00  0.00           O
ENDMDL
END
`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.pdb")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenAndReadTopology(t *testing.T) {
	path := writeFixture(t, twoModelPDB)
	r, status := Open(path)
	if status != StatusSuccess {
		t.Fatalf("expected StatusSuccess, got %d", status)
	}

	store, err := r.ReadTopology()
	if err != nil {
		t.Fatal(err)
	}
	n, err := store.SizeOfKind(mol.KindAtom)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("expected 4 atoms, got %d", n)
	}
	nRes, err := store.SizeOfKind(mol.KindResidue)
	if err != nil {
		t.Fatal(err)
	}
	if nRes != 1 {
		t.Fatalf("expected 1 residue, got %d", nRes)
	}
}

func TestReadNextTimestepAppendsBothFrames(t *testing.T) {
	path := writeFixture(t, twoModelPDB)
	r, status := Open(path)
	if status != StatusSuccess {
		t.Fatalf("expected StatusSuccess, got %d", status)
	}
	store, err := r.ReadTopology()
	if err != nil {
		t.Fatal(err)
	}

	if st := r.ReadNextTimestep(store); st != StatusSuccess {
		t.Fatalf("expected StatusSuccess for frame 0, got %d", st)
	}
	if st := r.ReadNextTimestep(store); st != StatusSuccess {
		t.Fatalf("expected StatusSuccess for frame 1, got %d", st)
	}
	if st := r.ReadNextTimestep(store); st != StatusEnd {
		t.Fatalf("expected StatusEnd after both frames consumed, got %d", st)
	}
	if store.NumFrames() != 2 {
		t.Fatalf("expected 2 frames, got %d", store.NumFrames())
	}
}

func TestOpenRejectsFileWithNoAtoms(t *testing.T) {
	path := writeFixture(t, "HEADER   nothing here\nEND\n")
	_, status := Open(path)
	if status != StatusInvalid {
		t.Fatalf("expected StatusInvalid, got %d", status)
	}
}

func TestOpenFSReadsFromMemoryFileSystem(t *testing.T) {
	mem := fsutil.NewMemoryFileSystem()
	if err := mem.WriteFile("fixture.pdb", []byte(twoModelPDB), 0o644); err != nil {
		t.Fatal(err)
	}

	r, status := OpenFS(mem, "fixture.pdb")
	if status != StatusSuccess {
		t.Fatalf("expected StatusSuccess, got %d", status)
	}
	store, err := r.ReadTopology()
	if err != nil {
		t.Fatal(err)
	}
	n, err := store.SizeOfKind(mol.KindAtom)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("expected 4 atoms, got %d", n)
	}
}
