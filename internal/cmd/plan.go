package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sofa-framework/plugin-maker/internal/output"
	"github.com/sofa-framework/plugin-maker/internal/scaffold"
)

// printPlan prints a dry-run listing of res in the requested format.
func printPlan(res *scaffold.Result, format output.OutputFormat) error {
	switch format {
	case output.FormatTable:
		tbl := output.NewTable("KIND", "PATH", "BYTES").AlignRight(2).Mute(0)
		for _, l := range scaffold.List(res) {
			size := "-"
			if l.Kind == "file" {
				size = strconv.Itoa(l.Size)
			}
			tbl.Row(l.Kind, l.Path, size)
		}
		output.Println(tbl.String())
	case output.FormatJSON:
		data, err := json.MarshalIndent(scaffold.List(res), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding plan as JSON: %w", err)
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(scaffold.List(res))
		if err != nil {
			return fmt.Errorf("encoding plan as YAML: %w", err)
		}
		output.Print(string(data))
	default:
		scaffold.Replay(res, &scaffold.ConsoleReporter{Verb: "Would create"})
	}
	return nil
}
