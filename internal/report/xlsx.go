package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hyperifyio/quizexport/internal/extract"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "题目"

var xlsxHeader = []interface{}{"序号", "题干", "选项", "答案"}

// WriteXLSX writes one row per question with the options rendered as in the
// text report, one per line inside the cell.
func WriteXLSX(path string, questions []extract.Question) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, q := range questions {
		opts := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, OptionLine(o))
		}
		row := []interface{}{i + 1, q.Stem, strings.Join(opts, "\n"), AnswerText(q.Answer)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	wrap, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})
	if err != nil {
		return fmt.Errorf("new style: %w", err)
	}
	if err := f.SetColStyle(SheetName, "A:D", wrap); err != nil {
		return fmt.Errorf("set style: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "C", 60); err != nil {
		return fmt.Errorf("set width: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}
