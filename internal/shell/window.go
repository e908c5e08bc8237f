package shell

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/img2ascii/internal/ascii"
)

// Window dimensions
const (
	WindowWidth  = 1000
	WindowHeight = 700
)

// WindowTitle is shown in the title bar.
const WindowTitle = "Image to ASCII"

// imageExtensions are offered by the file picker.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// Shell is the desktop front end: one button and a scrollable text area.
// It keeps its own widget handles so event handlers never reach for globals.
type Shell struct {
	conv   *ascii.Converter
	log    logrus.FieldLogger
	window fyne.Window
	output *widget.Entry
	button *widget.Button
}

// New builds the main window on app. Call ShowAndRun on the returned
// Shell's Window to start the event loop.
func New(app fyne.App, conv *ascii.Converter, log logrus.FieldLogger) *Shell {
	if log == nil {
		log = logrus.StandardLogger()
	}

	s := &Shell{
		conv:   conv,
		log:    log,
		window: app.NewWindow(WindowTitle),
	}

	s.output = widget.NewMultiLineEntry()
	s.output.Wrapping = fyne.TextWrapOff
	s.output.TextStyle = fyne.TextStyle{Monospace: true}

	s.button = widget.NewButton("Select Image", s.selectImage)

	s.window.SetContent(container.NewBorder(container.NewCenter(s.button), nil, nil, nil, s.output))
	s.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	return s
}

// Window returns the main window.
func (s *Shell) Window() fyne.Window {
	return s.window
}

// Text returns the current content of the text area.
func (s *Shell) Text() string {
	return s.output.Text
}

func (s *Shell) selectImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			s.log.WithError(err).Error("file dialog failed")
			return
		}
		if reader == nil {
			// cancelled
			return
		}
		path := reader.URI().Path()
		reader.Close()
		s.Render(path)
	}, s.window)
	fd.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	fd.Show()
}

// Render converts the image at path to fit the text area and replaces the
// text area's content with the result.
func (s *Shell) Render(path string) {
	columns := Columns(s.output.Size().Width, s.glyphWidth())
	s.log.WithFields(logrus.Fields{
		"path":    path,
		"columns": columns,
	}).Debug("rendering image")

	text := s.conv.ImageToASCII(path, columns, ascii.MaxRows)
	s.output.SetText(text)
}

// glyphWidth is the rendered width of "M" in the text area's font.
func (s *Shell) glyphWidth() float32 {
	return fyne.MeasureText("M", theme.TextSize(), s.output.TextStyle).Width
}
