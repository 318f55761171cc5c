package bulldag

// Index is the constraint for vertex keys. Any comparable type works: keys
// are compared, hashed and copied by value, and formatted through the fmt
// verbs when logged. The graph enforces no uniqueness beyond map semantics,
// so the caller is responsible for keys that uniquely identify the vertices
// they intend.
type Index interface {
	comparable
}
