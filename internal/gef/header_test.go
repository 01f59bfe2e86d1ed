package gef

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/gef-cpt/internal/model"
)

func TestParseHeader_Sample(t *testing.T) {
	lines := SplitLines(sampleGEF)
	raw, start, err := ParseHeader(lines)
	require.NoError(t, err)

	assert.Equal(t, "#EOH=", lines[start-1])
	assert.Equal(t, ";", raw.ColumnSeparator)
	assert.Equal(t, "!", raw.RecordSeparator)
	assert.InDelta(t, 132127.18, raw.OriginX, 1e-9)
	assert.InDelta(t, 458102.35, raw.OriginY, 1e-9)
	assert.InDelta(t, 1.45, raw.TopElevation, 1e-9)
	assert.InDelta(t, 1.5, raw.PreExcavatedDepth, 1e-9)
	assert.Equal(t, "CPT-01", raw.TestName)
	assert.Equal(t, "20040322", raw.FileDate)
	assert.Equal(t, "20040321", raw.StartDate)

	wantIndex := map[model.ColumnRole]int{
		model.Depth:          0,
		model.ConeResistance: 1,
		model.SleeveFriction: 2,
		model.PorePressure:   3,
	}
	if diff := cmp.Diff(wantIndex, raw.ColumnIndex); diff != "" {
		t.Errorf("column index mismatch (-want +got):\n%s", diff)
	}
	wantVoids := map[int]float64{0: -9999, 1: -9999}
	if diff := cmp.Diff(wantVoids, raw.ColumnVoids); diff != "" {
		t.Errorf("column voids mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "MPa", raw.Units[model.ConeResistance])
}

func TestParseHeader_Defaults(t *testing.T) {
	raw, start, err := ParseHeader([]string{"#GEFID= 1, 1, 0", "", "#EOH="})
	require.NoError(t, err)
	assert.Equal(t, 3, start)
	assert.Equal(t, " ", raw.ColumnSeparator)
	assert.Empty(t, raw.RecordSeparator)
	assert.Empty(t, raw.ColumnIndex)
	assert.Empty(t, raw.ColumnVoids)
	assert.Zero(t, raw.TopElevation)
}

func TestParseHeader_UnknownKeywordsIgnored(t *testing.T) {
	raw, _, err := ParseHeader([]string{
		"#COMPANYID= Fugro GeoServices B.V., NL005621409B08, 31",
		"#SOMETHINGNEW= whatever, 1",
		"#EOH=",
	})
	require.NoError(t, err)
	assert.Empty(t, raw.TestName)
}

func TestParseHeader_CorrectedDepth(t *testing.T) {
	t.Run("code 11 maps to depth", func(t *testing.T) {
		raw, _, err := ParseHeader([]string{"#COLUMNINFO= 5, m, gecorrigeerde diepte, 11", "#EOH="})
		require.NoError(t, err)
		assert.Equal(t, map[model.ColumnRole]int{model.Depth: 4}, raw.ColumnIndex)
	})

	t.Run("later declaration wins", func(t *testing.T) {
		raw, _, err := ParseHeader([]string{
			"#COLUMNINFO= 1, m, sondeertrajectlengte, 1",
			"#COLUMNINFO= 5, m, gecorrigeerde diepte, 11",
			"#EOH=",
		})
		require.NoError(t, err)
		assert.Equal(t, 4, raw.ColumnIndex[model.Depth])

		raw, _, err = ParseHeader([]string{
			"#COLUMNINFO= 5, m, gecorrigeerde diepte, 11",
			"#COLUMNINFO= 1, m, sondeertrajectlengte, 1",
			"#EOH=",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, raw.ColumnIndex[model.Depth])
	})

	t.Run("unmapped quantity ignored", func(t *testing.T) {
		raw, _, err := ParseHeader([]string{"#COLUMNINFO= 4, %, wrijvingsgetal, 4", "#EOH="})
		require.NoError(t, err)
		assert.Empty(t, raw.ColumnIndex)
	})
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"valid", "#STARTDATE= 2023, 5, 7, 10, 0, 0", "20230507"},
		{"no spaces", "#STARTDATE=2023,5,7", "20230507"},
		{"year too early", "#STARTDATE=1899,5,7", ""},
		{"year too late", "#STARTDATE=2101,5,7", ""},
		{"month out of range", "#STARTDATE=2023,13,7", ""},
		{"day out of range", "#STARTDATE=2023,5,32", ""},
		{"day zero", "#STARTDATE=2023,5,0", ""},
		{"non-numeric", "#STARTDATE=2023,May,7", ""},
		{"too few parts", "#STARTDATE=2023,5", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, _, err := ParseHeader([]string{tt.line, "#EOH="})
			require.NoError(t, err, "date errors must not fail the header")
			assert.Equal(t, tt.want, raw.StartDate)
		})
	}

	raw, _, err := ParseHeader([]string{"#FILEDATE= 1999, 12, 31", "#EOH="})
	require.NoError(t, err)
	assert.Equal(t, "19991231", raw.FileDate)
}

func TestParseHeader_Borehole(t *testing.T) {
	tests := []string{
		"#PROCEDURECODE=SIKB0101_BOREHOLE",
		"#REPORTCODE= GEF-BORE-Report, 1, 0, 0",
		"#PROCEDURECODE= gef-bore, 1",
	}
	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			_, _, err := ParseHeader([]string{"#GEFID= 1, 1, 0", line, "#EOH="})
			var wrongType *WrongFileTypeError
			require.ErrorAs(t, err, &wrongType)
			assert.Contains(t, err.Error(), "borehole")
		})
	}

	_, _, err := ParseHeader([]string{"#PROCEDURECODE= GEF-CPT-Report, 1, 1, 0, -", "#EOH="})
	assert.NoError(t, err)
}

func TestParseHeader_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"missing equals", "#TESTID CPT-01", errNoEquals},
		{"missing zid param", "#ZID= 31000", errMissingArgs},
		{"missing xyid param", "#XYID= 31000, 1.0", errMissingArgs},
		{"short columninfo", "#COLUMNINFO= 1, m, depth", errMissingArgs},
		{"missing void value", "#COLUMNVOID= 1", errMissingArgs},
		{"non-numeric x", "#XYID= 31000, abc, 1.0", nil},
		{"non-numeric column", "#COLUMNINFO= one, m, depth, 1", nil},
		{"zero column", "#COLUMNVOID= 0, -9999", nil},
		{"non-numeric quantity", "#COLUMNINFO= 1, m, depth, x", nil},
		{"non-numeric pre-excavation", "#MEASUREMENTVAR= 13, deep, m", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseHeader([]string{"#GEFID= 1, 1, 0", tt.line, "#EOH="})
			var headerErr *HeaderError
			require.ErrorAs(t, err, &headerErr)
			assert.Equal(t, 2, headerErr.Line)
			assert.Equal(t, tt.line, headerErr.Text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseHeader_OtherMeasurementVarIgnored(t *testing.T) {
	raw, _, err := ParseHeader([]string{"#MEASUREMENTVAR= 16, 1.2, m, not numeric here", "#EOH="})
	require.NoError(t, err)
	assert.Zero(t, raw.PreExcavatedDepth)
}

func TestParseHeader_NoEndOfHeader(t *testing.T) {
	_, _, err := ParseHeader([]string{"#GEFID= 1, 1, 0", "#TESTID= X"})
	assert.True(t, errors.Is(err, ErrNoEndOfHeader))
}

func TestParseHeader_Coordinates(t *testing.T) {
	raw, _, err := ParseHeader([]string{"#XYID= 31000, 132127.186, 458102.344", "#ZID=,5.00", "#EOH="})
	require.NoError(t, err)
	assert.InDelta(t, 132127.19, raw.OriginX, 1e-9)
	assert.InDelta(t, 458102.34, raw.OriginY, 1e-9)
	assert.InDelta(t, 5.0, raw.TopElevation, 1e-12)

	raw, _, err = ParseHeader([]string{"#ZID= 31000, -1.234, 0.01", "#EOH="})
	require.NoError(t, err)
	assert.InDelta(t, -1.234, raw.TopElevation, 1e-12, "ZID is not rounded")
}

func TestFinalize_CopiesMaps(t *testing.T) {
	raw := NewRawMetadata()
	raw.ColumnIndex[model.Depth] = 0
	raw.ColumnVoids[0] = -9999

	md := raw.Finalize()
	raw.ColumnIndex[model.Depth] = 7
	raw.ColumnVoids[3] = 1

	idx, ok := md.Column(model.Depth)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Len(t, md.ColumnVoids, 1)
}
