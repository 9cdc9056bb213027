// Package transform provides the projection model of a fisheye camera,
// mapping pixels on the image plane to directions on the unit sphere and
// back. The model is equidistant-like: the radial pixel distance from the
// principal point maps to an angle on the sphere through a single
// calibration factor.
package transform

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
	"gonum.org/v1/gonum/mat"
)

// ErrNoCalibration is when a camera does not have calibration parameters available.
var ErrNoCalibration = errors.New("fisheye camera calibration parameters are not available")

// NewNoCalibrationError is used when the calibration parameters are not defined.
func NewNoCalibrationError(msg string) error {
	return errors.Wrap(ErrNoCalibration, msg)
}

// ErrInvalidDimension is when a point does not have 2 or 3 components.
var ErrInvalidDimension = errors.New("expected point to be 2 or 3 dimensional")

// NewInvalidDimensionError is used when a point has an arity the conversion
// cannot dispatch on. It carries the observed number of components.
func NewInvalidDimensionError(n int) error {
	return errors.Wrapf(ErrInvalidDimension, "got %d dimensions", n)
}

// FisheyeCameraIntrinsics holds the parameters necessary to project pixels of
// a fisheye image onto the unit sphere and back. FOVScale is the lens
// distortion/field-of-view factor, the D constant of the calibration.
//
// Values are immutable after construction. A process working with several
// calibrations (per camera or per image) uses one value per calibration
// rather than mutating a shared one, so all operations are safe for
// concurrent use.
type FisheyeCameraIntrinsics struct {
	Fl       float64 `json:"fl"`
	Ppx      float64 `json:"ppx"`
	Ppy      float64 `json:"ppy"`
	FOVScale float64 `json:"fov_scale"`
}

// CheckValid checks if the fields for FisheyeCameraIntrinsics have valid inputs.
// All violations are reported, not just the first.
func (params *FisheyeCameraIntrinsics) CheckValid() error {
	if params == nil {
		return NewNoCalibrationError("intrinsics do not exist")
	}
	var err error
	if params.Fl <= 0 {
		err = multierr.Append(err, NewNoCalibrationError(fmt.Sprintf("invalid focal length Fl = %#v", params.Fl)))
	}
	if params.FOVScale <= 0 {
		err = multierr.Append(err, NewNoCalibrationError(fmt.Sprintf("invalid FOV scale = %#v", params.FOVScale)))
	}
	if params.Ppx < 0 {
		err = multierr.Append(err, NewNoCalibrationError(fmt.Sprintf("invalid principal X point Ppx = %#v", params.Ppx)))
	}
	if params.Ppy < 0 {
		err = multierr.Append(err, NewNoCalibrationError(fmt.Sprintf("invalid principal Y point Ppy = %#v", params.Ppy)))
	}
	return err
}

// NewFisheyeCameraIntrinsicsFromJSONFile takes in a file path to a JSON and
// turns it into FisheyeCameraIntrinsics.
func NewFisheyeCameraIntrinsicsFromJSONFile(jsonPath string) (*FisheyeCameraIntrinsics, error) {
	//nolint:gosec
	jsonFile, err := os.Open(jsonPath)
	if err != nil {
		return nil, errors.Wrap(err, "error opening JSON file")
	}
	defer utils.UncheckedErrorFunc(jsonFile.Close)
	byteValue, err := io.ReadAll(jsonFile)
	if err != nil {
		return nil, errors.Wrap(err, "error reading JSON data")
	}
	intrinsics := &FisheyeCameraIntrinsics{}
	if err := json.Unmarshal(byteValue, intrinsics); err != nil {
		return nil, errors.Wrap(err, "error parsing JSON string")
	}
	if err := intrinsics.CheckValid(); err != nil {
		return nil, err
	}
	return intrinsics, nil
}

// PixelToSphere projects a pixel on the image plane to a point on the unit
// sphere. The pixel is translated by the principal point, scaled by the focal
// length, and its radial distance is mapped to the polar angle through
// FOVScale. A pixel at the principal point projects to the optical axis
// (0, 0, 1).
func (params *FisheyeCameraIntrinsics) PixelToSphere(pt r2.Point) r3.Vector {
	x := (pt.X - params.Ppx) / params.Fl
	y := (pt.Y - params.Ppy) / params.Fl

	r := math.Sqrt(x*x + y*y)
	if r != 0 {
		x /= r
		y /= r
	}
	r *= params.FOVScale
	sinTheta := math.Sin(r)
	return r3.Vector{X: x * sinTheta, Y: y * sinTheta, Z: math.Cos(r)}
}

// SphereToPixel projects a point on the unit sphere back to a pixel on the
// image plane. It is the exact inverse of PixelToSphere for all pixels whose
// scaled radius lies in (0, π); outside that range acos/sin lose
// invertibility, a property of the lens model rather than an error. The
// optical axis (0, 0, 1) maps to the principal point without dividing by the
// vanishing radial term.
func (params *FisheyeCameraIntrinsics) SphereToPixel(pt r3.Vector) r2.Point {
	r := math.Acos(pt.Z)
	r /= params.FOVScale
	if pt.Z != 1 {
		r /= math.Sqrt(1 - pt.Z*pt.Z)
	}
	return r2.Point{X: r*pt.X*params.Fl + params.Ppx, Y: r*pt.Y*params.Fl + params.Ppy}
}

// ConvertPoint converts a single point between the image plane and the unit
// sphere, inferring the direction from the point's arity: 2 components are
// projected onto the sphere, 3 components back onto the plane. Any other
// arity fails with ErrInvalidDimension. Callers that need the direction to be
// explicit should call PixelToSphere or SphereToPixel directly.
func (params *FisheyeCameraIntrinsics) ConvertPoint(point []float64) ([]float64, error) {
	switch len(point) {
	case 2:
		pt := params.PixelToSphere(r2.Point{X: point[0], Y: point[1]})
		return []float64{pt.X, pt.Y, pt.Z}, nil
	case 3:
		pt := params.SphereToPixel(r3.Vector{X: point[0], Y: point[1], Z: point[2]})
		return []float64{pt.X, pt.Y}, nil
	default:
		return nil, NewInvalidDimensionError(len(point))
	}
}

// GetCameraMatrix creates a new camera matrix and returns it.
// Camera matrix:
// [[fl 0 ppx],
//
//	[0 fl ppy],
//	[0 0   1]]
func (params *FisheyeCameraIntrinsics) GetCameraMatrix() *mat.Dense {
	if params == nil {
		return nil
	}
	cameraMatrix := mat.NewDense(3, 3, nil)
	cameraMatrix.Set(0, 0, params.Fl)
	cameraMatrix.Set(1, 1, params.Fl)
	cameraMatrix.Set(0, 2, params.Ppx)
	cameraMatrix.Set(1, 2, params.Ppy)
	cameraMatrix.Set(2, 2, 1)
	return cameraMatrix
}
