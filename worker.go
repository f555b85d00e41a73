package factotum

// Worker is the capability a value needs to cross the erasure boundary: a
// uniform name plus membership in the recognized worker family. The work
// operation itself is deliberately absent from the interface. Each worker
// declares its own, differently shaped Work method, and the library matches
// arguments to it per dispatch instead of forcing a common signature.
type Worker interface {
	Name() string

	// isWorker gates admission. Only types embedding Identity satisfy
	// Worker, so eligibility is decided by the compiler, not at runtime.
	isWorker()
}

// Cloner lets a worker control its own duplication when the Hand holding it
// is cloned. Workers carrying reference state (slices, maps, pointers into
// shared structures) should implement it. Clone must return the same
// concrete type it is declared on.
type Cloner interface {
	Clone() Worker
}

// Identity is the embeddable base granting the Worker capability. It carries
// the worker's name and nothing else; in particular it declares no work
// operation and imposes no shape on the embedding type's Work method.
type Identity struct {
	name string
}

// NewIdentity names a worker.
func NewIdentity(name string) Identity {
	return Identity{name: name}
}

// Name returns the worker's name.
func (id Identity) Name() string { return id.name }

func (id Identity) String() string { return id.name }

func (Identity) isWorker() {}
