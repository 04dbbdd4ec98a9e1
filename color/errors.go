// SPDX-License-Identifier: MIT

package color

import "errors"

// ErrUnknownName is returned by Named for a name outside the SVG 1.1 palette.
var ErrUnknownName = errors.New("color: unknown color name")
