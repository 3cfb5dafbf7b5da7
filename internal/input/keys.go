// internal/input/keys.go
package input

// Key is a logical game key; front-ends map their physical keys onto it.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyFire
	KeyPause
)

// AllKeys lists every logical key.
var AllKeys = []Key{KeyLeft, KeyRight, KeyFire, KeyPause}

// Edge reports whether the key triggers once per press. The simulation
// force-releases edge keys every tick, so front-ends only Press them.
func (k Key) Edge() bool {
	return k == KeyFire || k == KeyPause
}

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	case KeyPause:
		return "pause"
	}
	return "unknown"
}

// KeySet is the set of keys currently held down. Front-ends Press on key-down
// and Release on key-up; the simulation calls Remove to force-release
// edge-triggered keys so that holding one does not repeat its action.
type KeySet struct {
	pressed map[Key]struct{}
}

func NewKeySet() *KeySet {
	return &KeySet{pressed: make(map[Key]struct{})}
}

func (s *KeySet) Contains(k Key) bool {
	_, ok := s.pressed[k]
	return ok
}

func (s *KeySet) Press(k Key) {
	s.pressed[k] = struct{}{}
}

func (s *KeySet) Release(k Key) {
	delete(s.pressed, k)
}

// Remove is Release under the name the simulation uses.
func (s *KeySet) Remove(k Key) {
	s.Release(k)
}

// Clear releases everything, used when a front-end loses focus.
func (s *KeySet) Clear() {
	clear(s.pressed)
}

func (s *KeySet) Len() int {
	return len(s.pressed)
}
