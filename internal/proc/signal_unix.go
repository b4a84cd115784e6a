//go:build unix

package proc

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// signalOf extracts the terminating signal from a finished process.
func signalOf(ps *os.ProcessState) (int, string, bool) {
	if ps == nil {
		return 0, "", false
	}
	ws, ok := ps.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0, "", false
	}
	sig := ws.Signal()
	name := unix.SignalName(sig)
	if name == "" {
		name = fmt.Sprintf("SIG%d", int(sig))
	}
	return int(sig), name, true
}
