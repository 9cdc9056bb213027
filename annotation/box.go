// Package annotation provides the geometric value types used to annotate
// fisheye imagery (bounding boxes and polygon contours) on the cartesian
// image plane and on the unit sphere, plus the conversions between the two
// frames. All types are immutable values validated at construction; the
// conversions are pure and safe for concurrent use.
package annotation

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/fisheye-tools/spherical/transform"
)

// BoxFormat names the encoding of the 4 values of a cartesian bounding box.
type BoxFormat string

const (
	// BoxFormatCorners encodes a box as its two opposite corners (x1,y1,x2,y2).
	BoxFormatCorners = BoxFormat("xyxy")
	// BoxFormatOriginSize encodes a box as its origin corner and size (x,y,w,h).
	BoxFormatOriginSize = BoxFormat("xywh")
	// BoxFormatCenterSize encodes a box as its center and size (cx,cy,w,h).
	BoxFormatCenterSize = BoxFormat("cxcywh")
)

// ErrInvalidFormat is when a bounding box format tag is not recognized.
var ErrInvalidFormat = errors.New("invalid bounding box format")

// ErrInvalidLength is when a box or contour has the wrong number of values.
var ErrInvalidLength = errors.New("wrong number of values")

const (
	cartesianBoxLen = 4
	sphericalBoxLen = 6
)

// CartesianBox is a bounding box on the image plane, 4 values in one of the
// supported formats.
type CartesianBox struct {
	Points []float64 `json:"points"`
	Format BoxFormat `json:"format"`
}

// NewCartesianBox validates the format tag and value count and returns the box.
func NewCartesianBox(points []float64, format BoxFormat) (CartesianBox, error) {
	switch format {
	case BoxFormatCorners, BoxFormatOriginSize, BoxFormatCenterSize:
	default:
		return CartesianBox{}, errors.Wrapf(ErrInvalidFormat, "%q", format)
	}
	if len(points) != cartesianBoxLen {
		return CartesianBox{}, errors.Wrapf(ErrInvalidLength, "cartesian box must have %d values, got %d",
			cartesianBoxLen, len(points))
	}
	return CartesianBox{Points: append([]float64(nil), points...), Format: format}, nil
}

// Corners normalizes the box to corner form and returns the upper-left and
// lower-right corners. For the center+size format the half extents round
// down, matching the floor division in the annotation data this model was
// tuned against; odd sizes therefore land half a pixel off center.
func (b CartesianBox) Corners() (r2.Point, r2.Point, error) {
	if len(b.Points) != cartesianBoxLen {
		return r2.Point{}, r2.Point{}, errors.Wrapf(ErrInvalidLength, "cartesian box must have %d values, got %d",
			cartesianBoxLen, len(b.Points))
	}
	switch b.Format {
	case BoxFormatCorners:
		return r2.Point{X: b.Points[0], Y: b.Points[1]}, r2.Point{X: b.Points[2], Y: b.Points[3]}, nil
	case BoxFormatOriginSize:
		x, y, w, h := b.Points[0], b.Points[1], b.Points[2], b.Points[3]
		return r2.Point{X: x, Y: y}, r2.Point{X: x + w, Y: y + h}, nil
	case BoxFormatCenterSize:
		cx, cy := b.Points[0], b.Points[1]
		w2, h2 := math.Floor(b.Points[2]/2), math.Floor(b.Points[3]/2)
		return r2.Point{X: cx - w2, Y: cy - h2}, r2.Point{X: cx + w2, Y: cy + h2}, nil
	default:
		return r2.Point{}, r2.Point{}, errors.Wrapf(ErrInvalidFormat, "%q", b.Format)
	}
}

// SphericalBox holds the two corners of a bounding box projected onto the
// unit sphere, concatenated as [x1,y1,z1,x2,y2,z2]. The parametrization is
// loosely based on the CGNS bounding box extension (CPEX-0042). It records
// the two corners only: arcs between them are left undefined, so the value
// is a container for the projected corners, not a region on the sphere.
type SphericalBox struct {
	Points []float64 `json:"points"`
}

// NewSphericalBox validates the value count and returns the box.
func NewSphericalBox(points []float64) (SphericalBox, error) {
	if len(points) != sphericalBoxLen {
		return SphericalBox{}, errors.Wrapf(ErrInvalidLength, "spherical box must have %d values, got %d",
			sphericalBoxLen, len(points))
	}
	return SphericalBox{Points: append([]float64(nil), points...)}, nil
}

// UpperLeft returns the projection of the box's upper-left corner.
func (b SphericalBox) UpperLeft() r3.Vector {
	return r3.Vector{X: b.Points[0], Y: b.Points[1], Z: b.Points[2]}
}

// LowerRight returns the projection of the box's lower-right corner.
func (b SphericalBox) LowerRight() r3.Vector {
	return r3.Vector{X: b.Points[3], Y: b.Points[4], Z: b.Points[5]}
}

// BoxToSpherical normalizes the cartesian box to corner form and projects
// both corners onto the unit sphere under the given calibration.
func BoxToSpherical(params *transform.FisheyeCameraIntrinsics, box CartesianBox) (SphericalBox, error) {
	upperLeft, lowerRight, err := box.Corners()
	if err != nil {
		return SphericalBox{}, err
	}
	ul := params.PixelToSphere(upperLeft)
	lr := params.PixelToSphere(lowerRight)
	return NewSphericalBox([]float64{ul.X, ul.Y, ul.Z, lr.X, lr.Y, lr.Z})
}
