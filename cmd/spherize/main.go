// Package main runs the demo conversion: the same bounding box in all three
// formats plus a polygon contour, projected onto the unit sphere under a
// reference calibration or one loaded from a JSON file.
package main

import (
	"flag"
	"os"

	"github.com/edaniels/golog"

	"github.com/fisheye-tools/spherical/annotation"
	"github.com/fisheye-tools/spherical/transform"
)

var logger = golog.NewDevelopmentLogger("spherize")

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		logger.Fatal(err)
	}
}

func realMain(args []string) error {
	flags := flag.NewFlagSet("spherize", flag.ContinueOnError)
	calibPath := flags.String("calibration", "", "path to a JSON calibration file")
	image2 := flags.Bool("image2", false, "use the second 1080p reference calibration")
	if err := flags.Parse(args); err != nil {
		return err
	}

	params := &transform.Calibration1080pImage1
	if *image2 {
		params = &transform.Calibration1080pImage2
	}
	if *calibPath != "" {
		loaded, err := transform.NewFisheyeCameraIntrinsicsFromJSONFile(*calibPath)
		if err != nil {
			return err
		}
		params = loaded
	}

	// the same box in its three encodings; all three project identically
	boxes := []struct {
		points []float64
		format annotation.BoxFormat
	}{
		{[]float64{100, 150, 150, 200}, annotation.BoxFormatCorners},
		{[]float64{100, 150, 50, 50}, annotation.BoxFormatOriginSize},
		{[]float64{125, 175, 50, 50}, annotation.BoxFormatCenterSize},
	}
	for _, b := range boxes {
		box, err := annotation.NewCartesianBox(b.points, b.format)
		if err != nil {
			return err
		}
		sphere, err := annotation.BoxToSpherical(params, box)
		if err != nil {
			return err
		}
		logger.Infow("box projected", "format", b.format, "points", sphere.Points)
	}

	poly, err := annotation.NewCartesianPolygonFromPoints([][]float64{
		{100, 100}, {80, 150}, {50, 75}, {90, 25},
	})
	if err != nil {
		return err
	}
	sphere, err := annotation.PolygonToSpherical(params, poly)
	if err != nil {
		return err
	}
	logger.Infow("polygon projected", "vertices", sphere.NumVertices(), "contour", sphere.Contour)
	return nil
}
