package annotation

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/fisheye-tools/spherical/transform"
)

func TestNewCartesianPolygon(t *testing.T) {
	contour := []r2.Point{{X: 100, Y: 100}, {X: 80, Y: 150}, {X: 50, Y: 75}}
	poly, err := NewCartesianPolygon(contour)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poly.NumVertices(), test.ShouldEqual, 3)

	_, err = NewCartesianPolygon(contour[:2])
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrInvalidLength), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "at least 3 points")
}

func TestNewCartesianPolygonFromPoints(t *testing.T) {
	poly, err := NewCartesianPolygonFromPoints([][]float64{{100, 100}, {80, 150}, {50, 75}, {90, 25}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poly.NumVertices(), test.ShouldEqual, 4)
	test.That(t, poly.Contour[1], test.ShouldResemble, r2.Point{X: 80, Y: 150})

	_, err = NewCartesianPolygonFromPoints([][]float64{{100, 100}, {80, 150, 1}, {50, 75}})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, transform.ErrInvalidDimension), test.ShouldBeTrue)

	_, err = NewCartesianPolygonFromPoints([][]float64{{100, 100}, {80, 150}})
	test.That(t, errors.Is(err, ErrInvalidLength), test.ShouldBeTrue)
}

func TestPolygonToSpherical(t *testing.T) {
	params := &transform.Calibration1080pImage1
	contour := []r2.Point{{X: 100, Y: 100}, {X: 80, Y: 150}, {X: 50, Y: 75}, {X: 90, Y: 25}}
	poly, err := NewCartesianPolygon(contour)
	test.That(t, err, test.ShouldBeNil)

	sphere, err := PolygonToSpherical(params, poly)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sphere.NumVertices(), test.ShouldEqual, 4)

	// order is preserved, vertex for vertex
	for i, px := range contour {
		want := params.PixelToSphere(px)
		test.That(t, sphere.Contour[i].X, test.ShouldEqual, want.X)
		test.That(t, sphere.Contour[i].Y, test.ShouldEqual, want.Y)
		test.That(t, sphere.Contour[i].Z, test.ShouldEqual, want.Z)
		test.That(t, sphere.Contour[i].Norm(), test.ShouldAlmostEqual, 1.0, 1e-9)
	}

	// degenerate contours fail before any conversion happens
	_, err = PolygonToSpherical(params, CartesianPolygon{Contour: contour[:2]})
	test.That(t, errors.Is(err, ErrInvalidLength), test.ShouldBeTrue)
}

func TestNewSphericalPolygon(t *testing.T) {
	_, err := NewSphericalPolygon(nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrInvalidLength), test.ShouldBeTrue)
}
