package day20

import (
	"strings"

	"github.com/specialistvlad/advent2023/internal/input"
)

// Kind is the behaviour of a node.
type Kind int

const (
	Broadcast Kind = iota
	FlipFlop
	Conjunction
)

const broadcaster = "broadcaster"

// Pulse travels from one module to another.
type Pulse struct {
	From, To string
	High     bool
}

// Node is one module of the pulse network.
type Node struct {
	Name    string
	Kind    Kind
	Outputs []string

	on     bool            // flip-flop state
	memory map[string]bool // conjunction: last pulse from each input
}

// Network holds every module and the state they carry between presses.
type Network struct {
	Modules map[string]*Node
	inputs  map[string][]string
}

// ParseNetwork parses lines like "%a -> b, c".
func ParseNetwork(in string) (*Network, error) {
	n := &Network{Modules: make(map[string]*Node), inputs: make(map[string][]string)}
	for _, line := range input.Lines(in) {
		name, outs, ok := strings.Cut(line, " -> ")
		if !ok {
			return nil, input.Malformed("module %q", line)
		}
		m := &Node{Name: name}
		switch {
		case strings.HasPrefix(name, "%"):
			m.Kind, m.Name = FlipFlop, name[1:]
		case strings.HasPrefix(name, "&"):
			m.Kind, m.Name = Conjunction, name[1:]
		case name == broadcaster:
			m.Kind = Broadcast
		default:
			return nil, input.Malformed("module %q has no type", name)
		}
		for _, o := range strings.Split(outs, ",") {
			m.Outputs = append(m.Outputs, strings.TrimSpace(o))
		}
		n.Modules[m.Name] = m
	}
	if _, ok := n.Modules[broadcaster]; !ok {
		return nil, input.Malformed("no broadcaster")
	}
	for _, m := range n.Modules {
		for _, o := range m.Outputs {
			n.inputs[o] = append(n.inputs[o], m.Name)
		}
	}
	n.Reset()
	return n, nil
}

// Reset turns every flip-flop off and makes every conjunction remember a
// low pulse from each input.
func (n *Network) Reset() {
	for _, m := range n.Modules {
		m.on = false
		if m.Kind == Conjunction {
			m.memory = make(map[string]bool)
			for _, in := range n.inputs[m.Name] {
				m.memory[in] = false
			}
		}
	}
}

// Press sends a low pulse to the broadcaster and processes pulses in the
// order they were sent until the network settles. observe sees every pulse,
// including the button's.
func (n *Network) Press(observe func(Pulse)) {
	queue := []Pulse{{From: "button", To: broadcaster}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		observe(p)

		m, ok := n.Modules[p.To]
		if !ok {
			continue // output-only modules such as rx
		}
		var high bool
		switch m.Kind {
		case Broadcast:
			high = p.High
		case FlipFlop:
			if p.High {
				continue
			}
			m.on = !m.on
			high = m.on
		case Conjunction:
			m.memory[p.From] = p.High
			high = false
			for _, v := range m.memory {
				if !v {
					high = true
					break
				}
			}
		}
		for _, o := range m.Outputs {
			queue = append(queue, Pulse{From: m.Name, To: o, High: high})
		}
	}
}
