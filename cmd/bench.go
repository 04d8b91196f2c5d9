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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/nodalbasis/nodalbasis"
	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/utils"
)

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time a cold build of the selected elements",
	Long: `
Builds every selected element into a fresh registry on ParallelDegree
goroutines and reports wall time, memory and, where the kernel allows it,
the CPU instruction count of the build,

nodalbasis bench -I request.yaml -p 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, gr, err := selectElements(cmd)
		if err != nil {
			return err
		}
		pd, _ := cmd.Flags().GetInt("parallelDegree")
		if pd == 0 {
			pd = gr.ParallelDegree
		}
		if viper.GetBool("verbose") {
			gr.Print()
		}
		return bench(os.Stdout, tags, pd)
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	addElementFlags(BenchCmd.Flags())
	BenchCmd.Flags().IntP("parallelDegree", "p", 0, "number of goroutines, defaults to the request's ParallelDegree")
}

func bench(w io.Writer, tags []shapes.Tag, parallelDegree int) (err error) {
	var (
		r     = nodalbasis.NewRegistry()
		start = time.Now()
		count uint64
	)
	count, err = countInstructions(func() error { return r.Warm(tags, parallelDegree) })
	switch {
	case err == errNoCounter:
		if err = r.Warm(tags, parallelDegree); err != nil {
			return
		}
		fmt.Fprintf(w, "%d elements built in %v on %d goroutines\n", r.Builds(), time.Since(start), parallelDegree)
	case err != nil:
		return
	default:
		fmt.Fprintf(w, "%d elements built in %v on %d goroutines, %d instructions\n",
			r.Builds(), time.Since(start), parallelDegree, count)
	}
	fmt.Fprintln(w, utils.GetMemUsage())
	return
}
