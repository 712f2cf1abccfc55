package dice

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/puzzlesolver/internal/puzzlefile"
)

// Die is one immutable die definition: its faces and, for each face, the
// faces it can be rolled to in a single move.
type Die struct {
	name  string
	faces []rune
	adj   map[rune][]rune
}

// NewDie builds a die from an ordered face list and an adjacency map.
// Every face must have an entry and every neighbor must itself be a face.
// A neighbor listed more than once is kept at its first position.
func NewDie(name string, faces []rune, adj map[rune][]rune) (*Die, error) {
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: die %q has no faces", ErrDie, name)
	}
	d := &Die{name: name, faces: append([]rune(nil), faces...), adj: make(map[rune][]rune, len(faces))}
	for _, f := range faces {
		if _, dup := d.adj[f]; dup {
			return nil, fmt.Errorf("%w: die %q lists face %q twice", ErrDie, name, f)
		}
		d.adj[f] = uniqueRunes(adj[f])
	}
	for _, f := range faces {
		for _, n := range d.adj[f] {
			if _, ok := d.adj[n]; !ok {
				return nil, fmt.Errorf("%w: die %q face %q neighbors unknown face %q", ErrUnknownFace, name, f, n)
			}
		}
	}
	return d, nil
}

func uniqueRunes(rs []rune) []rune {
	out := make([]rune, 0, len(rs))
	seen := make(map[rune]bool, len(rs))
	for _, r := range rs {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// ParseDie reads a die definition:
//
//	N
//	face neighbor neighbor ...
//	...
//
// N is the declared face count. Face lines run to the end of input and
// there must be at least N of them. Every token is a single character.
func ParseDie(name string, r io.Reader) (*Die, error) {
	s := puzzlefile.NewScanner(r)
	header, err := s.Require("face count")
	if err != nil {
		return nil, err
	}
	declared, err := strconv.Atoi(header[0])
	if err != nil || declared <= 0 {
		return nil, s.Errorf("face count %q is not a positive integer", header[0])
	}

	var faces []rune
	adj := make(map[rune][]rune)
	for {
		fields, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		runes := make([]rune, len(fields))
		for i, tok := range fields {
			v, size := utf8.DecodeRuneInString(tok)
			if size != len(tok) || v == utf8.RuneError {
				return nil, s.Errorf("face %q must be a single character", tok)
			}
			runes[i] = v
		}
		faces = append(faces, runes[0])
		adj[runes[0]] = append(adj[runes[0]], runes[1:]...)
	}
	if len(faces) < declared {
		return nil, s.Errorf("die declares %d faces but defines %d", declared, len(faces))
	}

	d, err := NewDie(name, faces, adj)
	if err != nil {
		return nil, s.Wrap(err)
	}
	return d, nil
}

// LoadDie reads a die definition file; the die is named after the file.
func LoadDie(path string) (*Die, error) {
	return puzzlefile.Load(path, func(r io.Reader) (*Die, error) {
		return ParseDie(filepath.Base(path), r)
	})
}

// DieFile returns the conventional file name for the die called name
// inside dir: dir/die-<name>.txt.
func DieFile(dir, name string) string {
	return filepath.Join(dir, "die-"+name+".txt")
}

// Name returns the die's name.
func (d *Die) Name() string { return d.name }

// Faces returns the faces in definition order.
func (d *Die) Faces() []rune { return append([]rune(nil), d.faces...) }

// HasFace reports whether f is a face of d.
func (d *Die) HasFace(f rune) bool {
	_, ok := d.adj[f]
	return ok
}

// Neighbors returns the faces reachable from f in one roll, in file order.
// The returned slice must not be modified.
func (d *Die) Neighbors(f rune) []rune { return d.adj[f] }

// String describes the die and the neighbors of every face.
func (d *Die) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, Faces: %d\n", d.name, len(d.faces))
	for _, f := range d.faces {
		sb.WriteString("\t")
		sb.WriteRune(f)
		sb.WriteString("=[")
		for i, n := range d.adj[f] {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteRune(n)
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
