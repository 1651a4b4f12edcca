package app

import (
	"os"
	"path/filepath"

	"github.com/gogpu/ren/driver"
	"github.com/gogpu/ren/wsi"
)

// Option configures a run.
//
// Example:
//
//	// Defaults: program name title, 856x482, no diagnostics.
//	app.Run(myApp)
//
//	// Custom title and diagnostics on.
//	app.Run(myApp, app.WithTitle("viewer"), app.WithDebug(true))
type Option func(*options)

// options holds the run configuration before defaults are resolved.
type options struct {
	title        string
	width        int
	height       int
	versionMajor int
	versionMinor int
	debug        bool
	open         wsi.Opener                 // nil means glfwwin.Open
	driver       func() (driver.API, error) // nil means gl45.Open
}

// defaultOptions returns the default run configuration.
func defaultOptions() options {
	return options{
		title:        filepath.Base(os.Args[0]),
		width:        856,
		height:       482,
		versionMajor: 4,
		versionMinor: 5,
	}
}

// config translates the options into window-creation hints.
func (o *options) config() wsi.Config {
	return wsi.Config{
		Title:        o.title,
		Width:        o.width,
		Height:       o.height,
		VersionMajor: o.versionMajor,
		VersionMinor: o.versionMinor,
		Debug:        o.debug,
	}
}

// WithTitle sets the window title. The default is the program name.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithSize sets the initial window size. The default is 856x482.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithVersion selects the device-API context version. The default is 4.5.
func WithVersion(major, minor int) Option {
	return func(o *options) {
		o.versionMajor = major
		o.versionMinor = minor
	}
}

// WithDebug turns the diagnostic surface on or off. The default is off.
//
// With diagnostics on, the run requests a debug-capable context, bridges
// device debug output to the package logger, drains and logs pending device
// error codes every frame, and treats the escape key as a close request.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// WithWindowOpener injects the window implementation. The default opens a
// GLFW window.
//
// Example:
//
//	app.Run(myApp, app.WithWindowOpener(fakeOpen))
func WithWindowOpener(open wsi.Opener) Option {
	return func(o *options) {
		o.open = open
	}
}

// WithDriver injects the device driver. The default initializes the
// OpenGL 4.5 loader against the window's context, which must already be
// current when the driver opens.
func WithDriver(open func() (driver.API, error)) Option {
	return func(o *options) {
		o.driver = open
	}
}
