// Copyright (c) 2025, Tidemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tidemark

import "errors"

// ErrInvalidRange is returned when [Options.Begin] or [Options.End]
// fall outside the 0-1 range.
var ErrInvalidRange = errors.New("tidemark: begin and end must be in the 0-1 range")

// ErrInvalidDirection is returned when [Options.Direction] is not one
// of the recognized [Directions] values.
var ErrInvalidDirection = errors.New("tidemark: direction must be Forward or Reverse")
