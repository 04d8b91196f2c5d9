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

	"github.com/spf13/cobra"

	"github.com/notargets/nodalbasis/closures"
	"github.com/notargets/nodalbasis/shapes"
)

// maxGmshType bounds the element type numbers searched for known tags
const maxGmshType = 128

// TagsCmd represents the tags command
var TagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the gmsh element types with a known reference element",
	Run: func(cmd *cobra.Command, args []string) {
		writeTags(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(TagsCmd)
}

func writeTags(w io.Writer) {
	fmt.Fprintf(w, "%6s %-24s %8s %6s %8s\n", "gmsh", "tag", "code", "nodes", "closures")
	for et := 1; et <= maxGmshType; et++ {
		tag, err := shapes.FromGmsh(et)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%6d %-24s %8d %6d %8d\n", et, tag, tag.Encode(), tag.NumNodes(), closures.Slots(tag.Shape))
	}
}
