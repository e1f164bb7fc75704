package sparam

import "errors"

// Errors returned by network operations.
var (
	ErrPortCount    = errors.New("sparam: port count must be positive")
	ErrPortMismatch = errors.New("sparam: networks have different port counts")
)

// PortPair indexes one scattering parameter by ordered
// (destination, source) port, both 1-based.
type PortPair struct {
	Dest int
	Src  int
}

// Network owns one Trace per ordered port pair of an N-port network.
//
// A zero Network has no ports and no traces; Allocate creates the full
// n×n parameter set. Traces are exclusively owned by the network slot
// they occupy: no two pairs alias the same trace.
type Network struct {
	nports int
	params map[PortPair]*Trace
}

// NewNetwork creates an empty network with no ports.
func NewNetwork() *Network {
	return &Network{}
}

// Ports returns the number of ports, 0 until Allocate is called.
func (n *Network) Ports() int {
	return n.nports
}

// Empty reports whether the network holds no parameters.
func (n *Network) Empty() bool {
	return len(n.params) == 0
}

// Param returns the trace for an ordered (destination, source) pair, or
// nil if the pair is out of range or the network is unallocated.
func (n *Network) Param(dest, src int) *Trace {
	return n.params[PortPair{dest, src}]
}

// Allocate creates fresh empty traces for every ordered pair in
// [1,ports]×[1,ports], releasing any previously owned traces first.
func (n *Network) Allocate(ports int) error {
	if ports <= 0 {
		return ErrPortCount
	}

	n.Clear()

	n.params = make(map[PortPair]*Trace, ports*ports)
	for d := 1; d <= ports; d++ {
		for s := 1; s <= ports; s++ {
			n.params[PortPair{d, s}] = NewTrace()
		}
	}

	n.nports = ports

	return nil
}

// Clear releases all owned traces and resets the network to the empty
// state.
func (n *Network) Clear() {
	n.params = nil
	n.nports = 0
}

// Cascade applies a second network stage after this one, parameter by
// parameter, using [Trace.Cascade] at every port pair.
//
// An empty rhs is a no-op. If this network is empty it becomes a deep
// copy of rhs. Otherwise both networks must have the same port count.
func (n *Network) Cascade(rhs *Network) error {
	if rhs.Empty() {
		return nil
	}

	if n.Empty() {
		if err := n.Allocate(rhs.nports); err != nil {
			return err
		}

		for pair, trace := range rhs.params {
			n.params[pair].CopyFrom(trace)
		}

		return nil
	}

	if n.nports != rhs.nports {
		return ErrPortMismatch
	}

	for d := 1; d <= n.nports; d++ {
		for s := 1; s <= n.nports; s++ {
			pair := PortPair{d, s}
			n.params[pair].Cascade(rhs.params[pair])
		}
	}

	return nil
}
