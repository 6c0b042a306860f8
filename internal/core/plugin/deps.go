package plugin

// PresenceProbe answers whether a named dependency is already satisfied
// in the target project. The standard implementation checks for a
// module directory of the same name; an installed-plugin ledger could
// be substituted without touching the checker.
type PresenceProbe interface {
	Present(name string) bool
}

// PresenceSet is a PresenceProbe backed by a fixed set of names.
type PresenceSet map[string]struct{}

// NewPresenceSet builds a PresenceSet from the given names.
func NewPresenceSet(names ...string) PresenceSet {
	s := make(PresenceSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s PresenceSet) Present(name string) bool {
	_, ok := s[name]
	return ok
}

// CheckDependencies verifies that every declared dependency of m is
// already satisfied according to probe. All missing dependencies are
// reported in a single MissingDependencyError; the check is shallow and
// never recurses into the dependencies' own declarations.
func CheckDependencies(m Metadata, probe PresenceProbe) error {
	var missing []string
	for _, dep := range m.Dependencies {
		if !probe.Present(dep) {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		return &MissingDependencyError{Plugin: m.Name, Missing: missing}
	}
	return nil
}
