// Package fixture holds hand-written types the generator tests derive from.
package fixture

// User exercises every field shape the generator supports.
type User struct {
	ID      int64
	Name    string
	Score   float64
	Aliases []string
	Attrs   map[string]float64
	Avatar  []byte
	Parent  *User
	Home    *Profile `issame:"shared"`
	Coords  [2]float64
}

// Profile is only ever referenced through a shared handle.
type Profile struct {
	Bio string
}

// Unit has no fields; two units are always the same.
type Unit struct{}

// Visitor is a variant shape the generator must reject.
type Visitor interface {
	Visit(node string)
}

// Conn carries a channel, which has no sameness.
type Conn struct {
	Name string
	Ch   chan int
}
