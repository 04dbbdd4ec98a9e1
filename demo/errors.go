// SPDX-License-Identifier: MIT

package demo

import "errors"

// ErrUnknownScene is returned by Render for a scene name it does not know.
var ErrUnknownScene = errors.New("demo: unknown scene")
