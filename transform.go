package main

import (
	"encoding/csv"
	"fmt"
	"io"

	"housing-trends/datasets"
	"housing-trends/exports"
	"housing-trends/parsers"
	"housing-trends/tables"

	"github.com/spf13/cobra"
)

type transformOptions struct {
	preset string
	id     string
	drop   []string
	sort   bool
	invert bool
	sheet  string
}

func newTransformCmd() *cobra.Command {
	opts := &transformOptions{}

	cmd := &cobra.Command{
		Use:   "transform [input.csv|input.xlsx]",
		Short: "Pivot a region-by-period file and print it as CSV",
		Long: `transform reads a Zillow-style file with one row per region and one
column per period and prints the pivoted table: one row per period, one
column per region.

A preset (home_price, rent) selects the identifier and dropped columns.
Setting --id or --drop replaces the preset with a custom transform.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.preset, "preset", tables.PresetHomePrice, "Transform preset: home_price, rent")
	cmd.Flags().StringVar(&opts.id, "id", "", "Identifier column (custom transform)")
	cmd.Flags().StringSliceVar(&opts.drop, "drop", nil, "Columns to drop (custom transform)")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "Sort regions by identifier (custom transform)")
	cmd.Flags().BoolVar(&opts.invert, "invert", false, "Print one row per region instead")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "Worksheet to read from xlsx input (default: first sheet)")
	return cmd
}

func (o *transformOptions) transform() (tables.TransformOptions, error) {
	if o.id == "" && len(o.drop) == 0 {
		return tables.PresetTransform(o.preset)
	}
	id := o.id
	if id == "" {
		id = tables.DefaultIDColumn
	}
	return tables.TransformOptions{IDColumn: id, DropColumns: o.drop, SortByKey: o.sort}, nil
}

func loadTable(path, sheet string, opts tables.TransformOptions) (*tables.SeriesTable, error) {
	format, err := parsers.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	raw, err := datasets.ReadFile(path, format, sheet)
	if err != nil {
		return nil, err
	}
	return tables.Transform(raw, opts)
}

func runTransform(w io.Writer, path string, o *transformOptions) error {
	opts, err := o.transform()
	if err != nil {
		return err
	}
	table, err := loadTable(path, o.sheet, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if o.invert {
		raw := tables.Invert(table, opts.IDColumn)
		csvWriter := csv.NewWriter(w)
		if err := csvWriter.Write(raw.Header); err != nil {
			return err
		}
		if err := csvWriter.WriteAll(raw.Rows); err != nil {
			return err
		}
		return csvWriter.Error()
	}

	series, err := table.Select(table.Regions())
	if err != nil {
		return err
	}
	return exports.WriteCSV(w, table.Periods(), series)
}

func newRegionsCmd() *cobra.Command {
	var preset, sheet string

	cmd := &cobra.Command{
		Use:   "regions [input.csv|input.xlsx]",
		Short: "List the region labels of a file in table order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := tables.PresetTransform(preset)
			if err != nil {
				return err
			}
			table, err := loadTable(args[0], sheet, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			for _, region := range table.Regions() {
				fmt.Fprintln(cmd.OutOrStdout(), region)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", tables.PresetHomePrice, "Transform preset: home_price, rent")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read from xlsx input (default: first sheet)")
	return cmd
}
