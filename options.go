// Copyright (c) 2025, Tidemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tidemark

import (
	"fmt"
	"strconv"
)

// Directions is the traversal direction along the anchor sequence.
type Directions int32

const (
	// Forward traverses the anchors from the first to the last.
	Forward Directions = iota

	// Reverse traverses the anchors from the last to the first.
	Reverse
)

func (d Directions) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Reverse:
		return "Reverse"
	}
	return "Directions(" + strconv.FormatInt(int64(d), 10) + ")"
}

// Options configures palette generation. The zero value is not valid;
// use [NewOptions] or call [Options.Defaults] first.
type Options struct {

	// Alpha is the 0-1 opacity attached to every output color.
	// Values outside the 0-1 range are clamped. Default is 1.
	Alpha float32

	// Begin is the interpolation parameter at which sampling starts,
	// in the 0-1 range, where 0 is the first anchor and 1 the last.
	// Default is 0.
	Begin float32

	// End is the interpolation parameter at which sampling ends, in
	// the 0-1 range. End may be less than Begin, which traverses the
	// anchors downward. Default is 1.
	End float32

	// Direction reverses the traversal when set to [Reverse], by
	// swapping Begin and End. Default is [Forward].
	Direction Directions
}

// NewOptions returns a new [Options] with default values.
func NewOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

func (o *Options) Defaults() {
	o.Alpha = 1
	o.Begin = 0
	o.End = 1
	o.Direction = Forward
}

// Validate checks that Begin and End are within the 0-1 range and
// that Direction is a recognized value, returning an error wrapping
// [ErrInvalidRange] or [ErrInvalidDirection] otherwise. Alpha is not
// validated; it is clamped at generation time.
func (o *Options) Validate() error {
	if o.Begin < 0 || o.Begin > 1 || o.End < 0 || o.End > 1 {
		return fmt.Errorf("%w: begin %g, end %g", ErrInvalidRange, o.Begin, o.End)
	}
	switch o.Direction {
	case Forward, Reverse:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int32(o.Direction))
	}
	return nil
}

// span returns the effective sampling interval after applying the
// direction swap.
func (o *Options) span() (begin, end float32) {
	begin, end = o.Begin, o.End
	if o.Direction == Reverse {
		begin, end = end, begin
	}
	return
}
