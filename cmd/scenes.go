package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/output"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the registered scenes together with the supported integrators and
// output formats.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	fmt.Fprint(ctx.App.Writer, sceneTable())
	fmt.Fprintf(ctx.App.Writer, "integrators: %v\n", integrator.Names())
	fmt.Fprintf(ctx.App.Writer, "formats:     %v\n", output.Formats())
	return nil
}

func sceneTable() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()
	return buf.String()
}
