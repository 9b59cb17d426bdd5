/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
)

// Sheet is the name of the single sheet in the report.
const Sheet = "Sheet1"

// Colors of the total column scale.
const (
	LowColor  = "#F8696B"
	MidColor  = "#FFEB84"
	HighColor = "#63BE7B"
)

// Write creates the spreadsheet at path with a bold header row followed by
// one row per record.
func Write(path string, header []string, records [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(Sheet, cell, name); err != nil {
			return fmt.Errorf("writing header %q: %w", name, err)
		}
	}
	if len(header) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("creating header style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(Sheet, "A1", last, bold); err != nil {
			return fmt.Errorf("styling header: %w", err)
		}
	}

	for r, record := range records {
		for c, value := range record {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(Sheet, cell, value); err != nil {
				return fmt.Errorf("writing %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// ApplyColorScale reopens the spreadsheet at path and adds a red, yellow,
// green scale over the data cells of the column headed column. The file is
// saved unchanged when the column is absent or there are no data rows.
func ApplyColorScale(path, column string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("reading %s: %w", sheet, err)
	}

	if len(rows) > 1 {
		if idx := slices.Index(rows[0], column); idx >= 0 {
			name, err := excelize.ColumnNumberToName(idx + 1)
			if err != nil {
				return err
			}
			ref := fmt.Sprintf("%s2:%s%d", name, name, len(rows))
			if err := f.SetConditionalFormat(sheet, ref, []excelize.ConditionalFormatOptions{{
				Type:     "3_color_scale",
				Criteria: "=",
				MinType:  "min",
				MidType:  "percentile",
				MidValue: "50",
				MaxType:  "max",
				MinColor: LowColor,
				MidColor: MidColor,
				MaxColor: HighColor,
			}}); err != nil {
				return fmt.Errorf("applying color scale to %s: %w", ref, err)
			}
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
