//go:build !unix

package proc

import "os"

// signalOf reports no signal on platforms without POSIX signals; a killed
// process surfaces there as a non-zero exit code.
func signalOf(_ *os.ProcessState) (int, string, bool) {
	return 0, "", false
}
