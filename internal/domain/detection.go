package domain

import (
	"fmt"
	"math"
	"strings"
)

// Detection is one model output from the analysis pipeline: a pixel-space
// bounding box, a class label, and a confidence score.
type Detection struct {
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

// Validate returns the field errors of a single detection. Field names are
// prefixed so that errors from a batch point at the offending record.
func (d Detection) Validate(prefix string) []FieldError {
	var errs []FieldError

	if d.X < 0 {
		errs = append(errs, FieldError{Field: prefix + ".x", Message: "must be >= 0"})
	}
	if d.Y < 0 {
		errs = append(errs, FieldError{Field: prefix + ".y", Message: "must be >= 0"})
	}
	if d.Width < 0 {
		errs = append(errs, FieldError{Field: prefix + ".width", Message: "must be >= 0"})
	}
	if d.Height < 0 {
		errs = append(errs, FieldError{Field: prefix + ".height", Message: "must be >= 0"})
	}
	if strings.TrimSpace(d.Class) == "" {
		errs = append(errs, FieldError{Field: prefix + ".class", Message: "required"})
	}
	if math.IsNaN(d.Confidence) || d.Confidence < 0 || d.Confidence > 1 {
		errs = append(errs, FieldError{Field: prefix + ".confidence", Message: "must be in [0, 1]"})
	}

	return errs
}

// ValidateDetections checks every record of a detection batch and collects all errors.
// An empty batch is rejected: an alert without evidence has no defined meaning.
func ValidateDetections(detections []Detection) []FieldError {
	if len(detections) == 0 {
		return []FieldError{{Field: "detections", Message: "at least one detection required"}}
	}

	var errs []FieldError
	for i, d := range detections {
		errs = append(errs, d.Validate(fmt.Sprintf("detections[%d]", i))...)
	}
	return errs
}

// MaxConfidence returns the highest confidence in the batch, or 0 for an empty batch.
func MaxConfidence(detections []Detection) float64 {
	var best float64
	for _, d := range detections {
		if d.Confidence > best {
			best = d.Confidence
		}
	}
	return best
}
