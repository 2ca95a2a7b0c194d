/*
 * main.go, part of goleaflet.
 *
 * Copyright 2023 The goleaflet developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//goleaflet creates ndx groups for membrane lipids, one per lipid species
//and membrane leaflet.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	leaflet "github.com/rmera/goleaflet"
	"github.com/rmera/goleaflet/gro"
	"github.com/rmera/goleaflet/leafplot"
	"github.com/rmera/goleaflet/ndx"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	groFile   string
	ndxFile   string
	outFile   string
	selection string
	marker    string
	axisName  string
	plotFile  string
	bins      int
	empty     bool
}

//run executes the whole program and returns its exit code. Everything
//fatal surfaces here as a non-nil error from the cobra command; partial
//output is never produced.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newCommand(stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	o := new(options)
	cmd := &cobra.Command{
		Use:   "goleaflet -c GRO_FILE [flags]",
		Short: "assigns membrane lipids to leaflets and writes them as ndx groups",
		Long: `goleaflet reads a gro snapshot, splits the selected membrane lipids into
residues and assigns each residue to the upper or lower membrane leaflet
from the position of its marker atom (by default the PO4 head-group bead)
relative to the membrane center. One ndx group per lipid species and
leaflet is written, named like POPC_lower and POPC_upper.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, stdout, stderr)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.groFile, "gro", "c", "", "gro file to read (required)")
	f.StringVarP(&o.ndxFile, "ndx", "n", "index.ndx", "ndx file to read")
	f.StringVarP(&o.outFile, "out", "o", "", "output ndx file (default standard output; appends if the file exists)")
	f.StringVarP(&o.selection, "selection", "s", "Membrane", "selection of membrane lipids")
	f.StringVarP(&o.marker, "marker", "p", "name PO4", "selection of lipid head-group marker atoms")
	f.BoolVarP(&o.empty, "empty", "e", false, "also create empty ndx groups")
	f.StringVar(&o.axisName, "axis", "z", "membrane normal axis (x, y or z)")
	f.StringVar(&o.plotFile, "plot", "", "write a marker-displacement histogram to this file")
	f.IntVar(&o.bins, "bins", 0, "histogram bins for --plot (0 means default)")
	cmd.MarkFlagRequired("gro")
	return cmd
}

func (o *options) run(cmd *cobra.Command, stdout, stderr io.Writer) error {
	logger := log.New(stderr, "goleaflet: ", 0)
	axis, err := leaflet.ParseAxis(o.axisName)
	if err != nil {
		return err
	}
	sys, err := gro.Read(o.groFile)
	if err != nil {
		return err
	}
	//A missing or unreadable ndx file is not fatal; selection then works
	//on queries only. Only mention it when the user asked for a
	//particular file.
	groups, err := ndx.Read(o.ndxFile, sys)
	if err != nil {
		groups = nil
		if cmd.Flags().Changed("ndx") {
			logger.Printf("ignoring index file: %v", err)
		}
	}
	membrane, err := leaflet.Select(sys, o.selection, groups)
	if err != nil {
		return err
	}
	if membrane.Len() == 0 {
		return fmt.Errorf("no membrane lipids (%q) found", o.selection)
	}
	markers, err := leaflet.Select(sys, o.marker, groups)
	if err != nil {
		return err
	}
	if markers.Len() == 0 {
		return fmt.Errorf("no marker atoms (%q) found", o.marker)
	}
	leaflets, err := leaflet.Assign(membrane, markers, axis)
	if err != nil {
		return fmt.Errorf("failed to create ndx groups: %w", err)
	}
	if o.plotFile != "" {
		if err := leafplot.SaveDisplacementHist(membrane, markers, axis, o.bins, o.plotFile); err != nil {
			return fmt.Errorf("couldn't write the displacement plot: %w", err)
		}
	}
	out, closer, err := openOutput(o.outFile, stdout)
	if err != nil {
		return fmt.Errorf("the output ndx file could not be opened: %w", err)
	}
	err = ndx.WriteLeaflets(out, leaflets, o.empty)
	if closer != nil {
		if cerr := closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

//openOutput returns the writer for the resulting groups: stdout when no
//file name was given, otherwise the named file, appended to if it
//already exists.
func openOutput(filename string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if filename == "" {
		return stdout, nil, nil
	}
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
