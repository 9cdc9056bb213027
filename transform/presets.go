package transform

// Reference calibrations for the two 1080p source images the lens constants
// were tuned against. They share focal length and principal point and differ
// only in the FOV scale factor. Treat them as read-only; copy before
// modifying.
var (
	// Calibration1080pImage1 is the reference calibration for the first
	// 1080p source image.
	Calibration1080pImage1 = FisheyeCameraIntrinsics{
		Fl:       714.285714,
		Ppx:      960,
		Ppy:      540,
		FOVScale: 1.082984,
	}

	// Calibration1080pImage2 is the same lens pointed at the second source
	// image, which needs a narrower FOV scale.
	Calibration1080pImage2 = FisheyeCameraIntrinsics{
		Fl:       714.285714,
		Ppx:      960,
		Ppy:      540,
		FOVScale: 0.871413,
	}
)
