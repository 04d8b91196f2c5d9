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
	"errors"

	perf "github.com/hodgesds/perf-utils"
)

var errNoCounter = errors.New("hardware instruction counter unavailable")

// countInstructions runs f under a perf instruction counter. When the kernel
// refuses the counter f has not run and errNoCounter is returned.
func countInstructions(f func() error) (count uint64, err error) {
	var (
		ran bool
		fe  error
	)
	pv, err := perf.CPUInstructions(func() error {
		ran = true
		fe = f()
		return fe
	})
	switch {
	case ran && fe != nil:
		return 0, fe
	case err != nil && !ran:
		return 0, errNoCounter
	case err != nil:
		return 0, err
	}
	return pv.Value, nil
}
