// Command rendemo drives an OpenGL 4.5 device through the ren API.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/gogpu/ren"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "rendemo"
	app.Usage = "render demo scenes on an OpenGL 4.5 device"
	app.Version = ren.Version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "request a debug context and log device messages",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		{
			Name:  "triangle",
			Usage: "render a spinning colored triangle",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 856,
					Usage: "window width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 482,
					Usage: "window height",
				},
			},
			Action: runTriangle,
		},
		{
			Name:  "texture",
			Usage: "render a textured quad",
			Description: `
Render a quad sampling a 256x256 texture. The texture contents come from
the PNG named by --image, scaled to fit, or from a generated checkerboard
when no image is given.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 856,
					Usage: "window width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 482,
					Usage: "window height",
				},
				cli.StringFlag{
					Name:  "image, i",
					Usage: "PNG file to sample instead of the checkerboard",
				},
			},
			Action: runTexture,
		},
		{
			Name:   "info",
			Usage:  "print device properties",
			Action: runInfo,
		},
		{
			Name:   "headless",
			Usage:  "run a buffer and texture smoke pass without showing a window",
			Action: runHeadless,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
