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

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/notargets/nodalbasis/InputParameters"
	"github.com/notargets/nodalbasis/shapes"
)

const exampleRequest = `
########################################
Title: "Test Case"
ParallelDegree: 4
Detail: false
Elements:
  - Shape: Tet
    Orders: [1, 2, 3]
  - Shape: Quad
    MinOrder: 1
    MaxOrder: 4
    Serendipity: true
GmshTypes: [5, 12]
########################################
`

// addElementFlags declares the flags selecting which elements a command
// works on, either one shape and order or a YAML request file
func addElementFlags(fs *pflag.FlagSet) {
	fs.StringP("shape", "S", "", "element shape: Point, Line, Triangle, Quad, Tet, Prism, Hex or Pyramid")
	fs.IntP("order", "N", 1, "polynomial order")
	fs.BoolP("serendipity", "s", false, "drop face and cell interior nodes")
	fs.IntP("gmsh", "g", 0, "gmsh element type number, instead of shape and order")
	fs.StringP("request", "I", "", "YAML request file listing elements like:"+exampleRequest)
}

// selectElements reads the element flags, a request file takes precedence
func selectElements(cmd *cobra.Command) (tags []shapes.Tag, gr *InputParameters.GenerationRequest, err error) {
	var (
		fs          = cmd.Flags()
		name, file  string
		order, gmsh int
		serendip    bool
	)
	gr = &InputParameters.GenerationRequest{ParallelDegree: 1}
	if file, err = fs.GetString("request"); err != nil {
		return
	}
	if len(file) != 0 {
		var data []byte
		if data, err = os.ReadFile(file); err != nil {
			return
		}
		if err = gr.Parse(data); err != nil {
			return
		}
		tags, err = gr.Tags()
		return
	}
	if gmsh, err = fs.GetInt("gmsh"); err != nil {
		return
	}
	if gmsh != 0 {
		var t shapes.Tag
		if t, err = shapes.FromGmsh(gmsh); err != nil {
			return
		}
		return []shapes.Tag{t}, gr, nil
	}
	if name, err = fs.GetString("shape"); err != nil {
		return
	}
	if len(name) == 0 {
		err = fmt.Errorf("must supply a shape (-S, --shape), a gmsh type (-g, --gmsh) or a request file (-I, --request)")
		return
	}
	order, _ = fs.GetInt("order")
	serendip, _ = fs.GetBool("serendipity")
	var s shapes.Shape
	if s, err = shapes.Parse(name); err != nil {
		return
	}
	var t shapes.Tag
	if t, err = shapes.NewTag(s, order, serendip); err != nil {
		return
	}
	return []shapes.Tag{t.Canonical()}, gr, nil
}
