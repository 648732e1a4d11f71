package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"tekstil-golang/internal/format"
	"tekstil-golang/internal/service/costreport"
)

type ReportSource interface {
	ModelReport(ctx context.Context, modelID, firmID int) (*costreport.ModelReport, error)
}

type GenerateExcelService struct {
	reports ReportSource
}

func NewGenerateService(reports ReportSource) *GenerateExcelService {
	return &GenerateExcelService{reports: reports}
}

// GenerateModelCostExcel renders the grouped model cost report to an
// xlsx buffer. Amounts are shown both in the recorded currency and
// converted to TRY through each line's snapshot rate.
func (g *GenerateExcelService) GenerateModelCostExcel(ctx context.Context, modelID, firmID int) ([]byte, error) {
	report, err := g.reports.ModelReport(ctx, modelID, firmID)
	if err != nil {
		return nil, fmt.Errorf("fetch report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Maliyet Raporu"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	subtotalStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	headers := []string{"Grup", "Kalem", "Miktar", "Birim Fiyat", "Para Birimi", "Tutar", "Tutar (TRY)", "Kullanım"}
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	// the export discloses every group, collapsed state is a screen thing
	exp := costreport.NewExpansion()
	keys := make([]string, 0, len(report.Groups))
	for _, grp := range report.Groups {
		keys = append(keys, grp.Key)
	}
	exp.ToggleAll(keys)

	rowNum := 2
	for _, grp := range report.Groups {
		groupLabel := "Genel"
		if grp.OrderID != nil {
			groupLabel = fmt.Sprintf("Sipariş #%d", *grp.OrderID)
		}

		// collapsed groups would keep only their subtotal row
		if exp.Expanded(grp.Key) {
			for _, line := range grp.Lines {
				converted, _ := costreport.Convert(line.TotalCost, line.Currency, costreport.LineRates(line))

				f.SetCellValue(sheet, cellName(1, rowNum), groupLabel)
				f.SetCellValue(sheet, cellName(2, rowNum), line.ItemName)
				f.SetCellValue(sheet, cellName(3, rowNum), line.Quantity)
				f.SetCellValue(sheet, cellName(4, rowNum), line.UnitPrice)
				f.SetCellValue(sheet, cellName(5, rowNum), line.Currency)
				f.SetCellValue(sheet, cellName(6, rowNum), format.Currency(line.TotalCost, line.Currency))
				f.SetCellValue(sheet, cellName(7, rowNum), format.Currency(converted, "TRY"))
				if line.Usage != nil {
					f.SetCellValue(sheet, cellName(8, rowNum), *line.Usage)
				}
				rowNum++
			}
		}

		// group subtotal
		f.SetCellValue(sheet, cellName(1, rowNum), groupLabel+" toplam")
		f.SetCellValue(sheet, cellName(7, rowNum), format.Currency(grp.Total, "TRY"))
		if grp.UnitCost != nil {
			f.SetCellValue(sheet, cellName(8, rowNum), "birim: "+format.Currency(*grp.UnitCost, "TRY"))
		}
		f.SetCellStyle(sheet, cellName(1, rowNum), cellName(8, rowNum), subtotalStyle)
		rowNum++
	}

	f.SetCellValue(sheet, cellName(1, rowNum), "GENEL TOPLAM")
	f.SetCellValue(sheet, cellName(7, rowNum), format.Currency(report.GrandTotal, "TRY"))
	f.SetCellStyle(sheet, cellName(1, rowNum), cellName(8, rowNum), subtotalStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(sheet, "A", "H", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
