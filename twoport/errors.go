package twoport

import "errors"

// ErrSingular is returned when a parameter conversion or cascade divides
// by a zero determinant or zero element, meaning the network has no
// representation in the requested parameter set.
var ErrSingular = errors.New("twoport: network has no representation in the requested parameter set")
