// SPDX-License-Identifier: EPL-2.0

package container

import "errors"

var (
	ErrEmptyContainer     = errors.New("no clips left to pack")
	ErrInvalidMagic       = errors.New("invalid container magic")
	ErrUnsupportedVersion = errors.New("unsupported container version")
	ErrEntryOutOfRange    = errors.New("entry index out of range")
)
