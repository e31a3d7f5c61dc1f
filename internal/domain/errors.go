// SPDX-License-Identifier: Apache-2.0

package domain

import "errors"

var ErrMissingParameter = errors.New("missing job parameter")
var ErrUnsupportedIMT = errors.New("unsupported intensity measure type")
var ErrMissingDistance = errors.New("required distance measure not provided")
var ErrInvalidPlanarSurface = errors.New("planar surface must have exactly 4 corner points")
var ErrInvalidAssetValueRule = errors.New("invalid cost conversion / area type combination")
var ErrUnsupportedVariable = errors.New("unsupported disaggregation variable")
var ErrNoHazardOutput = errors.New("neither a hazard calculation nor a hazard output has been provided")
