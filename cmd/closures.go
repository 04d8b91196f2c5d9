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
	"time"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/nodalbasis/nodalbasis"
	"github.com/notargets/nodalbasis/shapes"
)

// ClosuresCmd represents the closures command
var ClosuresCmd = &cobra.Command{
	Use:   "closures",
	Short: "Reference nodes and closures of elements, written as YAML",
	Long: `
Builds the descriptor of each selected element and writes a YAML digest: node
count, number of symmetries and, with --detail, the node coordinates and the
full closure permutations,

nodalbasis closures -S Hex -N 2 --detail`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, gr, err := selectElements(cmd)
		if err != nil {
			return err
		}
		detail, _ := cmd.Flags().GetBool("detail")
		return writeDescriptors(os.Stdout, tags, detail || gr.Detail, viper.GetBool("verbose"))
	},
}

func init() {
	rootCmd.AddCommand(ClosuresCmd)
	addElementFlags(ClosuresCmd.Flags())
	ClosuresCmd.Flags().BoolP("detail", "d", false, "include node coordinates and full closures")
}

func writeDescriptors(w io.Writer, tags []shapes.Tag, detail, verbose bool) (err error) {
	summaries := make([]nodalbasis.Summary, 0, len(tags))
	for _, tag := range tags {
		start := time.Now()
		var d *nodalbasis.Descriptor
		if d, err = nodalbasis.Get(tag); err != nil {
			return
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "%-24s built in %v\n", tag, time.Since(start))
		}
		summaries = append(summaries, d.Summarize(detail))
	}
	var out []byte
	if out, err = yaml.Marshal(summaries); err != nil {
		return
	}
	_, err = w.Write(out)
	return
}
