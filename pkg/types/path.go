package types

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of folder names. The empty path denotes
// the gallery root. The trash sentinel, when present, is always
// segment 0 and the only segment: trash is not nested.
type Path []string

// NewPath validates segments and returns them as a Path.
func NewPath(segments ...string) (Path, error) {
	for i, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("empty path segment at index %d", i)
		}
		if strings.ContainsRune(seg, '/') {
			return nil, fmt.Errorf("path segment %q contains a separator", seg)
		}
		if seg == TrashFolderName && (i != 0 || len(segments) != 1) {
			return nil, fmt.Errorf("trash folder %q cannot be nested", TrashFolderName)
		}
	}
	return Path(segments), nil
}

// ParsePath splits a slash-separated string into a validated Path.
// An empty string yields the root path.
func ParsePath(s string) (Path, error) {
	s = strings.Trim(s, "/")
	if s == "" {
		return Path{}, nil
	}
	return NewPath(strings.Split(s, "/")...)
}

// TrashPath returns the canonical path of the trash view.
func TrashPath() Path {
	return Path{TrashFolderName}
}

// IsRoot reports whether p is the gallery root.
func (p Path) IsRoot() bool { return len(p) == 0 }

// IsTrash reports whether p addresses the trash container.
func (p Path) IsTrash() bool {
	return len(p) > 0 && p[0] == TrashFolderName
}

// Child returns p extended by one segment.
func (p Path) Child(name string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, name)
}

// Parent returns p truncated by one segment. The parent of the root
// is the root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p.Truncate(len(p) - 1)
}

// Truncate returns the first n segments of p as a new Path.
func (p Path) Truncate(n int) Path {
	if n < 0 {
		n = 0
	}
	if n > len(p) {
		n = len(p)
	}
	out := make(Path, n)
	copy(out, p[:n])
	return out
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and other have identical segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String joins the segments with slashes. The root renders as "".
func (p Path) String() string {
	return strings.Join(p, "/")
}
