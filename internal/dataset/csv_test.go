package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"launch_dash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVSource_Load(t *testing.T) {
	src := NewCSVSource(filepath.Join("testdata", "launches.csv"))

	records, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 18)

	assert.Equal(t, models.LaunchRecord{
		Site:                   "CCAFS LC-40",
		PayloadMassKg:          0,
		BoosterVersionCategory: "v1.0",
		OutcomeSuccess:         false,
	}, records[0])
	assert.Equal(t, models.LaunchRecord{
		Site:                   "VAFB SLC-4E",
		PayloadMassKg:          9600,
		BoosterVersionCategory: "FT",
		OutcomeSuccess:         true,
	}, records[11])
	assert.Equal(t, "csv:testdata/launches.csv", src.Name())
}

func TestCSVSource_MissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "missing.csv")).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseCSV(t *testing.T) {
	const header = "Launch Site,Payload Mass (kg),Booster Version Category,class\n"

	tests := []struct {
		name      string
		input     string
		wantErr   string
		checkFunc func(*testing.T, []models.LaunchRecord)
	}{
		{
			name:  "quoted headers and fields",
			input: "\"Launch Site\",'Payload Mass (kg)',Booster Version Category,class\n\"KSC LC-39A\",  2490 ,FT,1\n",
			checkFunc: func(t *testing.T, records []models.LaunchRecord) {
				require.Len(t, records, 1)
				assert.Equal(t, "KSC LC-39A", records[0].Site)
				assert.Equal(t, 2490.0, records[0].PayloadMassKg)
				assert.True(t, records[0].OutcomeSuccess)
			},
		},
		{
			name:  "header only is an empty dataset",
			input: header,
			checkFunc: func(t *testing.T, records []models.LaunchRecord) {
				assert.NotNil(t, records)
				assert.Empty(t, records)
			},
		},
		{
			name:  "float class encoding",
			input: header + "CCAFS LC-40,500,v1.0,0.0\n",
			checkFunc: func(t *testing.T, records []models.LaunchRecord) {
				require.Len(t, records, 1)
				assert.False(t, records[0].OutcomeSuccess)
			},
		},
		{
			name:  "byte order mark before header",
			input: "\ufeff" + header + "KSC LC-39A,2490,FT,1\n",
			checkFunc: func(t *testing.T, records []models.LaunchRecord) {
				require.Len(t, records, 1)
				assert.Equal(t, "KSC LC-39A", records[0].Site)
			},
		},
		{name: "empty input", input: "", wantErr: "no header"},
		{name: "missing column", input: "Launch Site,class\nKSC LC-39A,1\n", wantErr: "missing required column \"Payload Mass (kg)\""},
		{name: "negative mass", input: header + "KSC LC-39A,-1,FT,1\n", wantErr: "line 2: invalid payload mass"},
		{name: "non-numeric mass", input: header + "KSC LC-39A,heavy,FT,1\n", wantErr: "line 2: invalid payload mass"},
		{name: "bad class", input: header + "KSC LC-39A,100,FT,1\nKSC LC-39A,100,FT,2\n", wantErr: "line 3: invalid class"},
		{name: "empty site", input: header + ",100,FT,1\n", wantErr: "empty \"Launch Site\""},
		{name: "short row", input: header + "KSC LC-39A,100\n", wantErr: "wrong number of fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseCSV(context.Background(), strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, records)
				return
			}
			require.NoError(t, err)
			tt.checkFunc(t, records)
		})
	}
}

func TestParseCSV_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseCSV(ctx, strings.NewReader("Launch Site,Payload Mass (kg),Booster Version Category,class\nA,1,FT,1\n"))
	assert.ErrorIs(t, err, context.Canceled)
}
