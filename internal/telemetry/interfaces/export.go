package interfaces

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	telemetry "github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/domain"
)

// BuildEventLogXLSX renders an event log as a spreadsheet with the same
// five-column layout as the CSV sink.
func BuildEventLogXLSX(rows []telemetry.Row) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "events"
	f.SetSheetName("Sheet1", sheet)

	_ = f.SetCellValue(sheet, "A1", "timestamp")
	_ = f.SetCellValue(sheet, "B1", "node_id")
	_ = f.SetCellValue(sheet, "C1", "sensor")
	_ = f.SetCellValue(sheet, "D1", "key")
	_ = f.SetCellValue(sheet, "E1", "value")

	for i, row := range rows {
		line := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", line), row.Timestamp)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", line), row.NodeID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", line), row.Sensor)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", line), row.Key)
		switch row.Value.Kind() {
		case telemetry.KindNumber:
			num, _ := row.Value.Num()
			_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", line), num)
		case telemetry.KindBool:
			b, _ := row.Value.Truth()
			_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", line), b)
		default:
			s, _ := row.Value.Str()
			_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", line), s)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
