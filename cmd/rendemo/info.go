package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/gogpu/ren"
	"github.com/gogpu/ren/app"
	"github.com/gogpu/ren/driver"
)

// runInfo opens a hidden context, queries the device, and prints a property
// table.
func runInfo(cliCtx *cli.Context) error {
	return app.RunHeadless(func(ctx *ren.Context) error {
		api := ctx.Driver()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeader([]string{"Property", "Value"})
		table.Append([]string{"Vendor", api.GetString(driver.Vendor)})
		table.Append([]string{"Renderer", api.GetString(driver.Renderer)})
		table.Append([]string{"Version", api.GetString(driver.Version)})
		table.Append([]string{"GLSL version", api.GetString(driver.ShadingLanguageVersion)})
		table.Append([]string{"Max texture size", fmt.Sprintf("%d", api.GetInteger(driver.MaxTextureSize))})
		table.Append([]string{"Max vertex attribs", fmt.Sprintf("%d", api.GetInteger(driver.MaxVertexAttribs))})
		table.Render()
		return nil
	}, app.WithDebug(cliCtx.GlobalBool("debug")))
}
