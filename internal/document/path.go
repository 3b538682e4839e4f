package document

// Path addresses a nested key within a document as an ordered sequence of
// object key segments. The zero value addresses the document root.
type Path []string

// Child returns a new path extended with key. The receiver is never mutated;
// the returned path owns its backing array so sibling extensions cannot
// clobber each other during recursion.
func (p Path) Child(key string) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = key
	return child
}

// String renders the dotted display form, e.g. "logging.level". The root
// path renders as an empty string.
func (p Path) String() string {
	switch len(p) {
	case 0:
		return ""
	case 1:
		return p[0]
	}
	n := len(p) - 1
	for _, seg := range p {
		n += len(seg)
	}
	b := make([]byte, 0, n)
	for i, seg := range p {
		if i > 0 {
			b = append(b, '.')
		}
		b = append(b, seg...)
	}
	return string(b)
}

// IsRoot reports whether the path addresses the document root
func (p Path) IsRoot() bool { return len(p) == 0 }
