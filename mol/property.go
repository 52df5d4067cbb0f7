package mol

import "gonum.org/v1/gonum/spatial/r3"

// PropertyValue is the closed set of value types a property column may
// hold: 32-bit int, 32-bit float, a 3-vector position, and a short string.
type PropertyValue interface {
	int32 | float32 | r3.Vec | string
}

// PropertyKey identifies a property trajectory: which entity kind it
// belongs to, and its name. The value type is carried only at the type
// parameter of the generic accessors below, mirroring the original's
// runtime-reflection-derived (entity-type, property-type) pair without
// needing a reflection mechanism in Go.
type PropertyKey struct {
	Kind Kind
	Name string
}

// Standard property names, matching the canonical set in the data model.
const (
	PropName              = "Name"
	PropType              = "Type"
	PropAlternateLocation = "AlternateLocation"
	PropInsertionCode     = "InsertionCode"
	PropResName           = "ResName"
	PropResID             = "ResID"
	PropAtomicNumber      = "AtomicNumber"
	PropOccupancy         = "Occupancy"
	PropTemperatureFactor = "TemperatureFactor"
	PropMass              = "Mass"
	PropCharge            = "Charge"
	PropRadius            = "Radius"
	PropPosition          = "Position"
)

// trajectory is one property's storage: a sequence of columns. Static
// trajectories always hold exactly one column, shared by every frame;
// time-based trajectories hold one column per frame.
type trajectory[T PropertyValue] struct {
	timeBased bool
	columns   [][]T
}

// propEntry type-erases a *trajectory[T] behind closures so the container
// can resize/add/remove frames for every property without knowing T at the
// container level; PropertyAt recovers T via a type assertion on data.
type propEntry struct {
	timeBased   bool
	data        any
	resize      func(n int)
	addFrame    func(newSize int)
	removeFrame func(f int)
}

// PropertyContainer maps (entity kind, property name) to a property
// trajectory. See §4.1: add_property is fail-soft, property_at resolves a
// single column for a given optional frame, and frame/kind lifecycle
// operations propagate uniformly across every registered property.
type PropertyContainer struct {
	registeredKinds map[Kind]bool
	kindSizes       map[Kind]int
	numFrames       int
	props           map[PropertyKey]*propEntry
}

// NewPropertyContainer returns an empty container with no kinds registered.
func NewPropertyContainer() *PropertyContainer {
	return &PropertyContainer{
		registeredKinds: make(map[Kind]bool),
		kindSizes:       make(map[Kind]int),
		props:           make(map[PropertyKey]*propEntry),
	}
}

// RegisterKind declares kind k with an initial size, enabling properties and
// resizes of that kind.
func (c *PropertyContainer) RegisterKind(k Kind, size int) {
	c.registeredKinds[k] = true
	c.kindSizes[k] = size
}

// NumFrames returns the current frame count F.
func (c *PropertyContainer) NumFrames() int { return c.numFrames }

// SizeOfKind returns N_kind, or a structure error if kind is unregistered.
func (c *PropertyContainer) SizeOfKind(k Kind) (int, error) {
	if !c.registeredKinds[k] {
		return 0, newError(ErrStructure, "entity kind %s is not registered", k)
	}
	return c.kindSizes[k], nil
}

// ResizeKind resizes every property of kind k across every frame it holds.
// Shrinking truncates; growing appends default-initialised values.
func (c *PropertyContainer) ResizeKind(k Kind, n int) error {
	if !c.registeredKinds[k] {
		return newError(ErrStructure, "entity kind %s is not registered", k)
	}
	c.kindSizes[k] = n
	for key, e := range c.props {
		if key.Kind == k {
			e.resize(n)
		}
	}
	return nil
}

// AddFrame grows F by one, appending a fresh default-valued column to every
// time-based trajectory; static trajectories are untouched. Returns the new
// frame's index.
func (c *PropertyContainer) AddFrame() int {
	for key, e := range c.props {
		e.addFrame(c.kindSizes[key.Kind])
	}
	c.numFrames++
	return c.numFrames - 1
}

// RemoveFrame erases column f from every time-based trajectory and
// decrements F. A no-op if f is out of range.
func (c *PropertyContainer) RemoveFrame(f int) {
	if f < 0 || f >= c.numFrames {
		return
	}
	for _, e := range c.props {
		e.removeFrame(f)
	}
	c.numFrames--
}

// AddProperty registers a property of kind key.Kind and type T. If the
// property already exists, it is returned unchanged (fail-soft) regardless
// of the timeBased/initialSize arguments passed this time.
func AddProperty[T PropertyValue](c *PropertyContainer, key PropertyKey, timeBased bool, initialSize int) (*trajectory[T], error) {
	if !c.registeredKinds[key.Kind] {
		return nil, newError(ErrStructure, "entity kind %s is not registered", key.Kind)
	}
	if e, ok := c.props[key]; ok {
		traj, ok := e.data.(*trajectory[T])
		if !ok {
			return nil, newError(ErrStructure, "property %s/%s already registered with a different type", key.Kind, key.Name)
		}
		return traj, nil
	}

	numCols := 1
	if timeBased {
		numCols = c.numFrames
	}
	traj := &trajectory[T]{timeBased: timeBased, columns: make([][]T, numCols)}
	for i := range traj.columns {
		traj.columns[i] = make([]T, initialSize)
	}

	entry := &propEntry{
		timeBased: timeBased,
		data:      traj,
		resize: func(n int) {
			for i, col := range traj.columns {
				if n <= len(col) {
					traj.columns[i] = col[:n]
				} else {
					traj.columns[i] = append(col, make([]T, n-len(col))...)
				}
			}
		},
		addFrame: func(newSize int) {
			if !traj.timeBased {
				return
			}
			traj.columns = append(traj.columns, make([]T, newSize))
		},
		removeFrame: func(f int) {
			if !traj.timeBased || f >= len(traj.columns) {
				return
			}
			traj.columns = append(traj.columns[:f], traj.columns[f+1:]...)
		},
	}
	c.props[key] = entry
	return traj, nil
}

// PropertyAt returns the column for key at frame: for a static property,
// the single shared column regardless of frame; for a time-based property,
// column[frame], or (nil, nil) if frame >= F. An unregistered property is a
// structure error.
func PropertyAt[T PropertyValue](c *PropertyContainer, key PropertyKey, frame int) ([]T, error) {
	e, ok := c.props[key]
	if !ok {
		return nil, newError(ErrStructure, "property %s/%s is not registered", key.Kind, key.Name)
	}
	traj, ok := e.data.(*trajectory[T])
	if !ok {
		return nil, newError(ErrStructure, "property %s/%s has a different value type", key.Kind, key.Name)
	}
	if !traj.timeBased {
		return traj.columns[0], nil
	}
	if frame < 0 || frame >= len(traj.columns) {
		return nil, nil
	}
	return traj.columns[frame], nil
}

// HasProperty reports whether key has been registered, regardless of type.
func (c *PropertyContainer) HasProperty(key PropertyKey) bool {
	_, ok := c.props[key]
	return ok
}
