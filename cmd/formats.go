/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notargets/meshio/types"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported output formats",
	Run: func(cmd *cobra.Command, args []string) {
		descriptions := map[string]string{
			"ascii": "Cart3D ASCII triangulation (.tri, .triq with states)",
			"b4":    "Cart3D binary triangulation, big-endian, 4-byte words",
			"lb4":   "Cart3D binary triangulation, little-endian, 4-byte words",
			"b8":    "Cart3D binary triangulation, big-endian, 8-byte words",
			"lb8":   "Cart3D binary triangulation, little-endian, 8-byte words",
			"surf":  "AFLR3 surface mesh (.surf)",
			"stl":   "stereolithography, ASCII",
			"stlb":  "stereolithography, binary",
		}
		for _, name := range types.FormatNames() {
			fmt.Printf("%-6s %s\n", name, descriptions[name])
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
