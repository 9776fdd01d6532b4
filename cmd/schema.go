// Package cmd implements the command-line interface for utune.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/utune-cli/utune/quality"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("profiles", "p", false, "Generate the JSON Schema for quality profile objects")
}

// schemaCmd generates JSON schemas for structured command outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured command outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "track", "candidate", "link", "profile", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("profiles")):
			schema = reflector.Reflect([]*quality.Profile{})
		default:
			schema = reflector.Reflect(&searchOutput{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
