// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command fitshdr dumps the header of a FITS file as typed properties.
package main

import (
	"fmt"
	"os"
	"strings"

	gofits "github.com/blinklabs-io/gofits"
	"github.com/blinklabs-io/gofits/header"
	"github.com/spf13/cobra"
)

func main() {
	var hduIndex int
	var prefix string

	rootCmd := &cobra.Command{
		Use:   "fitshdr FILE",
		Short: "Dump the header of a FITS file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var options []gofits.FITSOptionFunc
			if prefix != "" {
				options = append(
					options,
					gofits.WithFilter(func(name string) bool {
						return strings.HasPrefix(name, prefix)
					}),
				)
			}
			f, err := gofits.Open(args[0], options...)
			if err != nil {
				return err
			}
			defer f.Close()
			list, err := f.Header(hduIndex)
			if err != nil {
				return err
			}
			for i := 0; i < list.Size(); i++ {
				printProperty(cmd, list.Get(i))
			}
			return nil
		},
	}
	rootCmd.Flags().IntVarP(
		&hduIndex, "hdu", "n", 0, "zero-based HDU index",
	)
	rootCmd.Flags().StringVarP(
		&prefix, "prefix", "p", "", "only show keywords with this prefix",
	)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func printProperty(cmd *cobra.Command, p *header.Property) {
	line := fmt.Sprintf("%-8s [%s] %v", p.Name, p.Type, p.Value)
	if p.Comment != "" {
		line += " / " + p.Comment
	}
	cmd.Println(line)
}
