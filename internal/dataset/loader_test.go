package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flight.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeTempCSV(t, `Altitude_m_MSL,Ozone_ppbv,Flag
100.5,32.1,ok
110.0,34.9,ok
`)

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Altitude_m_MSL", "Ozone_ppbv", "Flag"}, table.Columns)
	require.Equal(t, 2, table.Rows())
	assert.Equal(t, []string{"100.5", "32.1", "ok"}, table.Cells[0])
}

func TestLoad_TrimsHeaderWhitespace(t *testing.T) {
	path := writeTempCSV(t, " Altitude_m_MSL , Ozone_ppbv \n100,30\n")

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, table.ColumnIndex(AltitudeColumn))
	assert.Equal(t, 1, table.ColumnIndex(OzoneColumn))
}

func TestLoad_BlanksFillSentinels(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want string
	}{
		{name: "integer sentinel", cell: "-9999", want: ""},
		{name: "real sentinel", cell: "-9999.0", want: ""},
		{name: "scientific sentinel", cell: "-8.888e3", want: ""},
		{name: "third sentinel", cell: "-7777", want: ""},
		{name: "near sentinel kept", cell: "-9998.9", want: "-9998.9"},
		{name: "regular value kept", cell: "42.5", want: "42.5"},
		{name: "non numeric kept", cell: "n/a", want: "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, "Altitude_m_MSL,Ozone_ppbv\n100,"+tt.cell+"\n")

			table, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, table.Cells[0][1])
		})
	}
}

func TestLoad_PadsRaggedRows(t *testing.T) {
	path := writeTempCSV(t, "Altitude_m_MSL,Ozone_ppbv,Flag\n100,30\n110,31,ok,extra\n")

	table, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 2, table.Rows())
	assert.Equal(t, []string{"100", "30", ""}, table.Cells[0])
	assert.Equal(t, []string{"110", "31", "ok"}, table.Cells[1])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.True(t, loadErr.NotFound())
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := Load(path)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.False(t, loadErr.NotFound())
}

func TestLoad_Workbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Altitude_m_MSL", "Ozone_ppbv"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{100.5, 32.1}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{110.0, -9999}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Altitude_m_MSL", "Ozone_ppbv"}, table.Columns)
	require.Equal(t, 2, table.Rows())
	assert.Equal(t, "32.1", table.Cells[0][1])
	assert.Equal(t, "", table.Cells[1][1], "sentinel should be blanked in workbooks too")
}
