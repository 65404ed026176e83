// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux && !windows

package thread

import "errors"

func platformCurrentID() uint64 {
	return 0
}

func platformSetAffinity(cpu int) error {
	return errors.New("affinity: not supported on this platform")
}

// Naming is best effort; platforms without support keep the default name.
func platformSetName(name string) error {
	return nil
}
