package ascii

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/img2ascii/internal/imaging"
)

const (
	// MaxRows caps the number of lines produced by the shells.
	MaxRows = 50

	// DefaultColumns is the width used when no better estimate is available.
	DefaultColumns = 100
)

// ErrInvalidSize is returned when the requested grid has a non-positive
// width or row cap.
var ErrInvalidSize = errors.New("target width and max height must be positive")

// Result is the output of a successful conversion.
type Result struct {
	// Text holds the lines joined with "\n", without a trailing newline.
	Text string `json:"text"`

	// Columns is the width the image was resized to.
	Columns int `json:"columns"`

	// Rows is the number of lines in Text.
	Rows int `json:"rows"`
}

// Converter runs the image-to-text pipeline. It holds no state between
// calls other than its logger.
type Converter struct {
	log logrus.FieldLogger
}

// NewConverter returns a Converter that reports failures to log.
// A nil log uses the logrus standard logger.
func NewConverter(log logrus.FieldLogger) *Converter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Converter{log: log}
}

// Convert loads the image at path and renders it newWidth characters wide
// and at most maxHeight lines tall.
//
// The stages always run in the same order: resize, grayscale, ramp mapping,
// reflow. Load failures are returned wrapped; non-positive sizes return
// ErrInvalidSize.
func (c *Converter) Convert(path string, newWidth, maxHeight int) (*Result, error) {
	if newWidth < 1 || maxHeight < 1 {
		return nil, fmt.Errorf("%w: width=%d max_height=%d", ErrInvalidSize, newWidth, maxHeight)
	}

	img, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}

	resized := imaging.Resize(img, newWidth, maxHeight)
	gray := imaging.Grayscale(resized)
	lines := Reflow(MapPixels(gray), newWidth)

	c.log.WithFields(logrus.Fields{
		"path":   path,
		"source": fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()),
		"grid":   fmt.Sprintf("%dx%d", gray.Bounds().Dx(), gray.Bounds().Dy()),
	}).Debug("converted image")

	return &Result{
		Text:    strings.Join(lines, "\n"),
		Columns: newWidth,
		Rows:    len(lines),
	}, nil
}

// ImageToASCII is Convert for callers that only want text.
//
// Any failure is logged at error level and reported as the empty string, so
// an unreadable file and an empty image look the same to the caller. Use
// Convert to tell them apart.
func (c *Converter) ImageToASCII(path string, newWidth, maxHeight int) string {
	res, err := c.Convert(path, newWidth, maxHeight)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"path":       path,
			"width":      newWidth,
			"max_height": maxHeight,
		}).WithError(err).Error("image conversion failed")
		return ""
	}
	return res.Text
}
