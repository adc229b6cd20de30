package main

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/wippyai/layout"
	"github.com/wippyai/layout/demo"
	"github.com/wippyai/layout/errors"
)

var (
	showTarget string
	showJSON   bool
)

var showCmd = &cobra.Command{
	Use:   "show <record>",
	Short: "Print size, offsets, and padding for one catalog record",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showTarget, "target", "t", "native", "alignment target (native, lp64, ilp32, packed)")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "emit the report as JSON")
	rootCmd.AddCommand(showCmd)
}

type fieldReport struct {
	Name      string `json:"name"`
	Offset    uint32 `json:"offset"`
	Size      uint32 `json:"size"`
	PadBefore uint32 `json:"pad_before"`
}

type showReport struct {
	Record  string        `json:"record"`
	Target  string        `json:"target"`
	Size    uint32        `json:"size"`
	Align   uint32        `json:"align"`
	Padding uint32        `json:"padding"`
	Fields  []fieldReport `json:"fields,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	entry, ok := demo.Lookup(args[0])
	if !ok {
		return errors.NotFound(errors.PhaseReport, "record", args[0])
	}

	target, err := layout.TargetByName(showTarget)
	if err != nil {
		return err
	}
	calc := layout.NewCalculator(target)

	info, err := calc.Calculate(entry.Model)
	if err != nil {
		return err
	}

	report := showReport{
		Record:  entry.Name,
		Target:  target.Name,
		Size:    info.Size,
		Align:   info.Align,
		Padding: info.Padding,
	}

	switch model := entry.Model.(type) {
	case *layout.Record:
		regions, err := calc.Regions(model)
		if err != nil {
			return err
		}
		for _, r := range regions {
			report.Fields = append(report.Fields, fieldReport{
				Name:      r.Field,
				Offset:    r.Offset,
				Size:      r.Size,
				PadBefore: r.PadBefore,
			})
		}
	case *layout.Union:
		// every case overlays offset zero
		for _, c := range model.Cases {
			cinfo, err := calc.Calculate(c.Type)
			if err != nil {
				return err
			}
			report.Fields = append(report.Fields, fieldReport{
				Name: c.Name,
				Size: cinfo.Size,
			})
		}
	}

	if showJSON {
		out, err := sonic.MarshalIndent(report, "", "  ")
		if err != nil {
			return errors.Wrap(errors.PhaseReport, errors.KindIO, err, "encode report")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	printReport(cmd, report)
	return nil
}

func printReport(cmd *cobra.Command, r showReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s on %s\n", r.Record, r.Target)
	fmt.Fprintf(out, "  size    %d\n", r.Size)
	fmt.Fprintf(out, "  align   %d\n", r.Align)
	fmt.Fprintf(out, "  padding %d\n", r.Padding)
	if len(r.Fields) == 0 {
		return
	}
	fmt.Fprintf(out, "\n  %-12s %6s %6s %6s\n", "field", "offset", "size", "pad")
	for _, f := range r.Fields {
		fmt.Fprintf(out, "  %-12s %6d %6d %6d\n", f.Name, f.Offset, f.Size, f.PadBefore)
	}
}
