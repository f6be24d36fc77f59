// Package testutil provides shared fixtures and fakes for mloopctl tests.
package testutil

import "os"

// SampleDump is a trimmed saisdkdump snapshot with a well-formed netdev
// section: four Ethernet ports plus the CPU port (suffix-less, sorts
// first) and a blank trailing line.
const SampleDump = `Mellanox SDK dump
arbitrary preamble text

netdev_dump:
--------------------------------------------
 idx  name         log_port     oper
--------------------------------------------
 0    Ethernet0    0x10100      up
 1    Ethernet4    0x10200      up
 2    Ethernet8    0x10300      down
 3    Ethernet12   0x10400      up
 4    CPU          0xFFFFF      up

cmd_ifc_dump:
trailing section not parsed
`

// LoopbackCall records one SetPhysLoopback invocation.
type LoopbackCall struct {
	Logical      string
	LoopbackType int
}

// FakeRunner implements mloop.ToolRunner for tests. GenerateDump writes
// DumpText to the requested path; the set calls are recorded and fail
// according to the error fields.
type FakeRunner struct {
	DumpText    string
	DumpErr     error
	LoopbackErr error

	// TxFailures fails the first N SetTxSignalUp calls; -1 fails every
	// call.
	TxFailures int
	TxErr      error

	GenerateCalls int
	LoopbackCalls []LoopbackCall
	TxCalls       []string
}

func (f *FakeRunner) GenerateDump(path string) error {
	f.GenerateCalls++
	if f.DumpErr != nil {
		return f.DumpErr
	}
	return os.WriteFile(path, []byte(f.DumpText), 0644)
}

func (f *FakeRunner) SetPhysLoopback(logical string, loopbackType int) error {
	f.LoopbackCalls = append(f.LoopbackCalls, LoopbackCall{Logical: logical, LoopbackType: loopbackType})
	return f.LoopbackErr
}

func (f *FakeRunner) SetTxSignalUp(logical string) error {
	f.TxCalls = append(f.TxCalls, logical)
	if f.TxFailures < 0 || len(f.TxCalls) <= f.TxFailures {
		return f.txErr()
	}
	return nil
}

func (f *FakeRunner) txErr() error {
	if f.TxErr != nil {
		return f.TxErr
	}
	return errTxNotUp
}

var errTxNotUp = errOf("tx signal not up")

type errOf string

func (e errOf) Error() string { return string(e) }
