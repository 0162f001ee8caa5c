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
	"os"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/meshio/mesh"
	"github.com/notargets/meshio/types"
	"github.com/notargets/meshio/utils"
	"github.com/notargets/meshio/writefiles"
)

// MeshDescription is the YAML input accepted by the write command. Index
// lists are 0-based; the writers convert to each format's convention.
type MeshDescription struct {
	Title       string      `yaml:"Title"`
	Points      [][]float64 `yaml:"Points"`
	Tris        [][]int     `yaml:"Tris"`
	Quads       [][]int     `yaml:"Quads"`
	CompID      []int       `yaml:"CompID"`
	TriBC       []int       `yaml:"TriBC"`
	QuadCompID  []int       `yaml:"QuadCompID"`
	QuadBC      []int       `yaml:"QuadBC"`
	Q           [][]float64 `yaml:"Q"`
	Normals     [][]float64 `yaml:"Normals"`
	BLSpacing   []float64   `yaml:"BLSpacing"`
	BLThickness []float64   `yaml:"BLThickness"`
}

func (md *MeshDescription) Parse(data []byte) error {
	return yaml.Unmarshal(data, md)
}

// Triangulation converts the description into the writers' input type.
func (md *MeshDescription) Triangulation() (t mesh.Triangulation, err error) {
	if t.Points, err = floatMatrix("Points", md.Points, 3); err != nil {
		return
	}
	if t.Tris, err = intMatrix("Tris", md.Tris, 3); err != nil {
		return
	}
	if t.Quads, err = intMatrix("Quads", md.Quads, 4); err != nil {
		return
	}
	t.CompID = intVector(md.CompID)
	t.TriBC = intVector(md.TriBC)
	t.QuadCompID = intVector(md.QuadCompID)
	t.QuadBC = intVector(md.QuadBC)
	if len(md.Q) != 0 {
		if t.Q, err = floatMatrix("Q", md.Q, len(md.Q[0])); err != nil {
			return
		}
	}
	if t.Normals, err = floatMatrix("Normals", md.Normals, 3); err != nil {
		return
	}
	t.BLSpacing = floatVector(md.BLSpacing)
	t.BLThickness = floatVector(md.BLThickness)
	return
}

func (md *MeshDescription) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", md.Title)
	fmt.Printf("[%d]\t\t\t= Nodes\n", len(md.Points))
	fmt.Printf("[%d]\t\t\t= Triangles\n", len(md.Tris))
	fmt.Printf("[%d]\t\t\t= Quads\n", len(md.Quads))
}

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write a YAML mesh description to a mesh file",
	Long: `Write reads a YAML mesh description (nodes, connectivity and optional
annotations) and writes it in the selected output format. Formats: ` + fmt.Sprint(types.FormatNames()),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err                   error
			inFile, outFile, name string
		)
		if inFile, err = cmd.Flags().GetString("input"); err != nil {
			panic(err)
		}
		if outFile, err = cmd.Flags().GetString("output"); err != nil {
			panic(err)
		}
		name, _ = cmd.Flags().GetString("format")
		if name == "" {
			name = viper.GetString("format")
		}
		if err = runWrite(inFile, outFile, name); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func runWrite(inFile, outFile, formatName string) error {
	if inFile == "" {
		return fmt.Errorf("must supply a mesh description file (-i, --input) in YAML format")
	}
	if outFile == "" {
		return fmt.Errorf("must supply an output file (-o, --output)")
	}
	format, err := types.ParseFormat(formatName)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(inFile)
	if err != nil {
		return err
	}
	var md MeshDescription
	if err = md.Parse(data); err != nil {
		return err
	}
	if verbose {
		md.Print()
	}
	t, err := md.Triangulation()
	if err != nil {
		return err
	}
	if err = writefiles.WriteMeshFile(outFile, t, format); err != nil {
		return err
	}
	if verbose {
		fmt.Printf("wrote %s (%s)\n", outFile, format)
	}
	return nil
}

func floatMatrix(field string, rows [][]float64, width int) (m utils.Matrix, err error) {
	if len(rows) == 0 {
		return
	}
	data := make([]float64, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			err = fmt.Errorf("%s row %d: want %d values, have %d", field, i, width, len(row))
			return
		}
		data = append(data, row...)
	}
	m = utils.NewMatrix(len(rows), width, data)
	return
}

func intMatrix(field string, rows [][]int, width int) (m utils.Matrix, err error) {
	if len(rows) == 0 {
		return
	}
	data := make([]float64, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			err = fmt.Errorf("%s row %d: want %d values, have %d", field, i, width, len(row))
			return
		}
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	m = utils.NewMatrix(len(rows), width, data)
	return
}

func intVector(vals []int) (v utils.Vector) {
	if len(vals) == 0 {
		return
	}
	data := make([]float64, len(vals))
	for i, val := range vals {
		data[i] = float64(val)
	}
	v = utils.NewVector(len(vals), data)
	return
}

func floatVector(vals []float64) (v utils.Vector) {
	if len(vals) == 0 {
		return
	}
	data := make([]float64, len(vals))
	copy(data, vals)
	v = utils.NewVector(len(vals), data)
	return
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringP("input", "i", "", "YAML mesh description file")
	writeCmd.Flags().StringP("output", "o", "", "output mesh file")
	writeCmd.Flags().StringP("format", "f", "", "output format (default from config, else ascii)")
	viper.SetDefault("format", "ascii")
}
