package annotation

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/fisheye-tools/spherical/transform"
)

// minPolygonLen is the minimum number of vertices that form a polygon.
const minPolygonLen = 3

// CartesianPolygon is a polygon on the image plane. The contour follows the
// OpenCV convention: an ordered list of boundary vertices with a consistent
// winding. Only the vertex count is validated here; collinearity and winding
// are the caller's concern.
type CartesianPolygon struct {
	Contour []r2.Point `json:"contour"`
}

// NewCartesianPolygon validates the vertex count and returns the polygon.
func NewCartesianPolygon(contour []r2.Point) (CartesianPolygon, error) {
	if len(contour) < minPolygonLen {
		return CartesianPolygon{}, errors.Wrapf(ErrInvalidLength,
			"need at least %d points to form a polygon, got %d", minPolygonLen, len(contour))
	}
	return CartesianPolygon{Contour: append([]r2.Point(nil), contour...)}, nil
}

// NewCartesianPolygonFromPoints builds a polygon from raw 2-value points, the
// shape annotation feeds usually deliver vertices in. A vertex with any other
// arity fails with ErrInvalidDimension.
func NewCartesianPolygonFromPoints(points [][]float64) (CartesianPolygon, error) {
	contour := make([]r2.Point, 0, len(points))
	for _, pt := range points {
		if len(pt) != 2 {
			return CartesianPolygon{}, transform.NewInvalidDimensionError(len(pt))
		}
		contour = append(contour, r2.Point{X: pt[0], Y: pt[1]})
	}
	return NewCartesianPolygon(contour)
}

// NumVertices returns the number of vertices in the contour.
func (p CartesianPolygon) NumVertices() int {
	return len(p.Contour)
}

// SphericalPolygon is a polygon contour projected onto the unit sphere, one
// vertex per source vertex, in the same order.
type SphericalPolygon struct {
	Contour []r3.Vector `json:"contour"`
}

// NewSphericalPolygon validates the vertex count and returns the polygon.
func NewSphericalPolygon(contour []r3.Vector) (SphericalPolygon, error) {
	if len(contour) < minPolygonLen {
		return SphericalPolygon{}, errors.Wrapf(ErrInvalidLength,
			"need at least %d points to form a polygon, got %d", minPolygonLen, len(contour))
	}
	return SphericalPolygon{Contour: append([]r3.Vector(nil), contour...)}, nil
}

// NumVertices returns the number of vertices in the contour.
func (p SphericalPolygon) NumVertices() int {
	return len(p.Contour)
}

// PolygonToSpherical projects every vertex of the contour onto the unit
// sphere under the given calibration, preserving vertex order and count.
func PolygonToSpherical(params *transform.FisheyeCameraIntrinsics, polygon CartesianPolygon) (SphericalPolygon, error) {
	if len(polygon.Contour) < minPolygonLen {
		return SphericalPolygon{}, errors.Wrapf(ErrInvalidLength,
			"need at least %d points to form a polygon, got %d", minPolygonLen, len(polygon.Contour))
	}
	contour := make([]r3.Vector, 0, len(polygon.Contour))
	for _, pt := range polygon.Contour {
		contour = append(contour, params.PixelToSphere(pt))
	}
	return NewSphericalPolygon(contour)
}
