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
	"io"
	"os"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"github.com/notargets/nodalbasis/hierarchical"
	"github.com/notargets/nodalbasis/nodalbasis"
	"github.com/notargets/nodalbasis/shapes"
)

// BasisCmd represents the basis command
var BasisCmd = &cobra.Command{
	Use:   "basis",
	Short: "Hierarchical basis functions of a simplex, written as YAML",
	Long: `
Prints the exact hierarchical functions of one simplex element, grouped by the
entity carrying them, for one orientation class. --edge selects the
tetrahedral Nédélec basis instead of the scalar basis,

nodalbasis basis -S Tet -N 2 --edge --class 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, _, err := selectElements(cmd)
		if err != nil {
			return err
		}
		if len(tags) != 1 {
			return fmt.Errorf("basis takes exactly one element, have %d", len(tags))
		}
		edge, _ := cmd.Flags().GetBool("edge")
		cls, _ := cmd.Flags().GetInt("class")
		return writeBasis(os.Stdout, tags[0], edge, cls)
	},
}

func init() {
	rootCmd.AddCommand(BasisCmd)
	addElementFlags(BasisCmd.Flags())
	BasisCmd.Flags().BoolP("edge", "e", false, "tetrahedral Nédélec edge basis")
	BasisCmd.Flags().IntP("class", "c", 0, "orientation class of edge and face functions")
}

// BasisListing is the YAML form of one orientation class of a basis
type BasisListing struct {
	Tag    string                `json:"tag"`
	Vector bool                  `json:"vector"`
	Class  int                   `json:"class"`
	Groups map[string][][]string `json:"functions"`
}

func listBasis(tag shapes.Tag, edge bool, cls int) (bl BasisListing, err error) {
	var d *nodalbasis.Descriptor
	if d, err = nodalbasis.Get(tag); err != nil {
		return
	}
	b := d.Basis()
	if edge {
		b = d.EdgeBasis()
	}
	if b == nil {
		err = fmt.Errorf("%w: %s has no hierarchical basis", hierarchical.ErrUnsupportedOrder, tag)
		return
	}
	bl = BasisListing{Tag: tag.String(), Vector: b.IsVector(), Class: cls, Groups: make(map[string][][]string)}
	for _, e := range []hierarchical.Entity{hierarchical.Vertex, hierarchical.Edge, hierarchical.Face, hierarchical.Cell} {
		if b.PerClass(e) == 0 {
			continue
		}
		c := cls
		if b.Classes(e) == 1 {
			c = 0
		} else if cls < 0 || cls >= b.Classes(e) {
			err = fmt.Errorf("class %d out of range, %s functions have %d classes", cls, e, b.Classes(e))
			return
		}
		var funcs [][]string
		for i := 0; i < b.PerClass(e); i++ {
			funcs = append(funcs, functionStrings(b, e, c, i))
		}
		bl.Groups[e.String()] = funcs
	}
	return
}

func functionStrings(b *hierarchical.Basis, e hierarchical.Entity, cls, i int) []string {
	if !b.IsVector() {
		switch e {
		case hierarchical.Vertex:
			return []string{b.Vertex(i).String()}
		case hierarchical.Edge:
			return []string{b.ScalarEdge(cls, i).String()}
		case hierarchical.Face:
			return []string{b.ScalarFace(cls, i).String()}
		}
		return []string{b.ScalarCell(i).String()}
	}
	var v [3]string
	switch e {
	case hierarchical.Edge:
		f := b.Edge(cls, i)
		v = [3]string{f[0].String(), f[1].String(), f[2].String()}
	case hierarchical.Face:
		f := b.Face(cls, i)
		v = [3]string{f[0].String(), f[1].String(), f[2].String()}
	case hierarchical.Cell:
		f := b.Cell(i)
		v = [3]string{f[0].String(), f[1].String(), f[2].String()}
	}
	return v[:]
}

func writeBasis(w io.Writer, tag shapes.Tag, edge bool, cls int) (err error) {
	var (
		bl  BasisListing
		out []byte
	)
	if bl, err = listBasis(tag, edge, cls); err != nil {
		return
	}
	if out, err = yaml.Marshal(bl); err != nil {
		return
	}
	_, err = w.Write(out)
	return
}
