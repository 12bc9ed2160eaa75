package main

import (
	"io"

	"github.com/kotoba-lang/kotoba/internal/flushio"
)

// MachineOption configures a Machine under construction.
type MachineOption interface{ apply(m *Machine) }

// MachineOptions combines options into one.
func MachineOptions(opts ...MachineOption) MachineOption { return machineOptions(opts) }

type machineOptions []MachineOption

func (opts machineOptions) apply(m *Machine) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(m)
		}
	}
}

var defaultOptions = MachineOptions(
	withOutput(io.Discard),
	loadPathOption{"."},
)

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type logfnOption func(mess string, args ...interface{})
type loadPathOption []string
type maxDepthOption int

func withOutput(w io.Writer) outputOption { return outputOption{w} }

func (o outputOption) apply(m *Machine) {
	if m.out != nil {
		m.out.Flush()
	}
	m.out = flushio.New(o.Writer)
}

func (o teeOption) apply(m *Machine) {
	m.out = flushio.Multi(m.out, flushio.New(o.Writer))
}

func (logfn logfnOption) apply(m *Machine) { m.logfn = logfn }

func (dirs loadPathOption) apply(m *Machine) { m.paths = append([]string(nil), dirs...) }

func (lim maxDepthOption) apply(m *Machine) { m.maxCall = int(lim) }
