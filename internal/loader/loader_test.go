package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ncaam_v5/strategy/internal/config"
	"ncaam_v5/strategy/internal/metrics"
	"ncaam_v5/strategy/internal/table"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ratingsCSV = "Rk,Team,Conf,AdjT,ORtg,DRtg,NetRtg,Luck,Strength of Schedule\n" +
	"1,Duke Blue Devils,ACC,66.2,126.5,89.6,36.9,-0.02,10.5\n" +
	"2,Houston Cougars,B12,61.8,122.9,87.9,35.0,0.01,11.2\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func csvConfig(path string) *config.Config {
	return &config.Config{
		TableSource:   config.SourceCSV,
		KenPomCSVPath: path,
		KenPomSeason:  2025,
	}
}

func TestTable_CSV(t *testing.T) {
	cfg := csvConfig(writeFile(t, "kenpom.csv", ratingsCSV))

	tbl, err := Table(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"duke blue devils", "houston cougars"}, tbl.Names())
}

func TestTable_Errors(t *testing.T) {
	_, err := Table(context.Background(), csvConfig(filepath.Join(t.TempDir(), "missing.csv")))
	assert.Error(t, err)

	cfg := csvConfig("unused.csv")
	cfg.TableSource = "parquet"
	_, err = Table(context.Background(), cfg)
	assert.ErrorContains(t, err, "unknown table source")
}

func TestNotes(t *testing.T) {
	book, err := Notes(&config.Config{})
	require.NoError(t, err)
	assert.NotNil(t, book)

	_, err = Notes(&config.Config{NotesPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestService(t *testing.T) {
	cfg := csvConfig(writeFile(t, "kenpom.csv", ratingsCSV))

	svc, err := Service(context.Background(), cfg)
	require.NoError(t, err)

	result, err := svc.Risk("duke", "houston")
	require.NoError(t, err)
	assert.Equal(t, "Duke", result.PredictedWinner)
}

type stubCache struct {
	snapshot *table.Table
	gets     int
	sets     int
}

func (s *stubCache) GetTable(ctx context.Context, source string, season int) (*table.Table, bool, error) {
	s.gets++
	return s.snapshot, s.snapshot != nil, nil
}

func (s *stubCache) SetTable(ctx context.Context, source string, season int, t *table.Table, ttl time.Duration) error {
	s.sets++
	s.snapshot = t
	return nil
}

func rowsGauge(t *testing.T) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, metrics.TableRowsLoaded.Write(&m))
	return m.GetGauge().GetValue()
}

func TestLoadTable_PostgresSnapshot(t *testing.T) {
	snapshot := table.New(
		[]string{"Team", "AdjT"},
		[][]string{{"Duke Blue Devils", "66.2"}, {"Houston Cougars", "61.8"}, {"Auburn Tigers", "68.0"}},
	)
	stub := &stubCache{snapshot: snapshot}
	cfg := &config.Config{TableSource: config.SourcePostgres, KenPomSeason: 2025}

	metrics.TableRowsLoaded.Set(0)
	tbl, err := loadTable(context.Background(), cfg, stub)
	require.NoError(t, err)

	assert.Same(t, snapshot, tbl)
	assert.Equal(t, 1, stub.gets)
	assert.Equal(t, 0, stub.sets)
	assert.Equal(t, 3.0, rowsGauge(t))
}

func TestLoadTable_CSVBypassesSnapshot(t *testing.T) {
	stale := table.New([]string{"Team"}, [][]string{{"Stale State"}})
	stub := &stubCache{snapshot: stale}

	first := csvConfig(writeFile(t, "first.csv", ratingsCSV))
	tbl, err := loadTable(context.Background(), first, stub)
	require.NoError(t, err)
	assert.Equal(t, []string{"duke blue devils", "houston cougars"}, tbl.Names())

	second := csvConfig(writeFile(t, "second.csv",
		"Team,AdjT\nGonzaga Bulldogs,69.1\n"))
	tbl, err = loadTable(context.Background(), second, stub)
	require.NoError(t, err)
	assert.Equal(t, []string{"gonzaga bulldogs"}, tbl.Names())

	assert.Equal(t, 0, stub.gets)
	assert.Equal(t, 0, stub.sets)
	assert.Equal(t, 1.0, rowsGauge(t))
}
