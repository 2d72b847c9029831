package action

import "strings"

// NamespacedID names a registrable action as a namespace and a path.
type NamespacedID struct {
	Namespace string
	Path      string
}

// NewID returns the id for namespace and path.
func NewID(namespace, path string) NamespacedID {
	return NamespacedID{Namespace: namespace, Path: path}
}

// ParseID splits s on its first colon. Without a colon, or with an empty
// namespace part, defaultNamespace is used.
func ParseID(s, defaultNamespace string) NamespacedID {
	ns, path, ok := strings.Cut(s, ":")
	if !ok {
		return NamespacedID{Namespace: defaultNamespace, Path: s}
	}
	if ns == "" {
		ns = defaultNamespace
	}
	return NamespacedID{Namespace: ns, Path: path}
}

func (id NamespacedID) String() string {
	return id.Namespace + ":" + id.Path
}
