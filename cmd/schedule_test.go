package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/cosmos-tools/core/vesting"
)

const singlePeriodJSON = "[\n  {\n    \"length\": \"1000\",\n    \"amount\": {\n      \"denom\": \"%s\",\n      \"amount\": \"40000\"\n    }\n  }\n]\n"

func singlePeriod(denom string) string {
	return strings.Replace(singlePeriodJSON, "%s", denom, 1)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cosmos_tools.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func decode(t *testing.T, out string) []vesting.Period {
	t.Helper()
	var periods []vesting.Period
	require.NoError(t, json.Unmarshal([]byte(out), &periods))
	return periods
}

func total(periods []vesting.Period) string {
	sum := sdkmath.ZeroUint()
	for _, p := range periods {
		sum = sum.Add(p.Amount.Amount)
	}
	return sum.String()
}

func TestGenerateCliff_Args(t *testing.T) {
	out, _, err := execute(t, "vesting", "generate-cliff", "40000", "--duration", "1000", "--interval", "1000")
	require.NoError(t, err)
	assert.Equal(t, singlePeriod("uknow"), out)
}

func TestGenerateCliff_Denom(t *testing.T) {
	out, _, err := execute(t, "vesting", "generate-cliff", "40000", "--duration", "1000", "--interval", "1000", "--denom", "stake")
	require.NoError(t, err)
	assert.Equal(t, singlePeriod("stake"), out)
}

func TestGenerateCliff_ConfigDenom(t *testing.T) {
	cfg := writeConfig(t, "[vesting]\ndenom = \"toto\"\n")
	out, _, err := execute(t, "--config", cfg, "vesting", "generate-cliff", "40000", "--duration", "1000", "--interval", "1000")
	require.NoError(t, err)
	assert.Equal(t, singlePeriod("toto"), out)

	out, _, err = execute(t, "--config", cfg, "vesting", "generate-cliff", "40000", "--duration", "1000", "--interval", "1000", "--denom", "tata")
	require.NoError(t, err)
	assert.Equal(t, singlePeriod("tata"), out)
}

func TestGenerateCliff_EnvDenom(t *testing.T) {
	t.Setenv("COSMOS_TOOLS_VESTING__DENOM", "fromenv")
	out, _, err := execute(t, "vesting", "generate-cliff", "40000", "-d", "1000", "-i", "1000")
	require.NoError(t, err)
	assert.Equal(t, singlePeriod("fromenv"), out)
}

func TestGenerateCliff_TwoYears(t *testing.T) {
	out, _, err := execute(t, "vesting", "generate-cliff", "40000", "-i", "86400", "-d", "63072000")
	require.NoError(t, err)
	periods := decode(t, out)
	assert.Len(t, periods, 730)
	assert.Equal(t, "40000", total(periods))

	out, _, err = execute(t, "vesting", "generate-cliff", "40000", "-i", "86400", "-d", "63072000", "-c", "15768000")
	require.NoError(t, err)
	periods = decode(t, out)
	assert.Len(t, periods, 548)
	assert.Equal(t, "40000", total(periods))
	assert.Equal(t, "10027", periods[0].Amount.Amount.String())
}

func TestGenerate_SkipZero(t *testing.T) {
	out, _, err := execute(t, "generate", "1", "-i", "1", "-d", "10")
	require.NoError(t, err)
	periods := decode(t, out)
	require.Len(t, periods, 1)
	assert.Equal(t, uint64(10), periods[0].Length)

	out, _, err = execute(t, "vesting", "generate-cliff", "1", "-i", "1", "-d", "10")
	require.NoError(t, err)
	assert.Len(t, decode(t, out), 10)
}

func TestGenerate_EmptySchedule(t *testing.T) {
	out, stderr, err := execute(t, "generate", "100", "-i", "1000", "-d", "500")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
	assert.Contains(t, stderr, "not a multiple of interval")
}

func TestGenerateCliff_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "periods.json")
	out, _, err := execute(t, "vesting", "generate-cliff", "40000", "-d", "1000", "-i", "1000", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(singlePeriod("uknow"), "\n"), string(b))
}

func TestGenerateCliff_OutputWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "periods.json")
	_, _, err := execute(t, "vesting", "generate-cliff", "40000", "-d", "1000", "-i", "1000", "-o", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write output")
}

func TestGenerateCliff_Formats(t *testing.T) {
	out, _, err := execute(t, "vesting", "generate-cliff", "40000", "-d", "1000", "-i", "1000", "-f", "csv")
	require.NoError(t, err)
	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"length", "denom", "amount"}, {"1000", "uknow", "40000"}}, recs)

	out, _, err = execute(t, "vesting", "generate-cliff", "40000", "-d", "1000", "-i", "1000", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `length: "1000"`)
	assert.False(t, strings.HasSuffix(out, "\n\n"))

	_, _, err = execute(t, "vesting", "generate-cliff", "40000", "-d", "1000", "-i", "1000", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode schedule")
}

func TestGenerateCliff_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vesting.prom")
	_, _, err := execute(t, "vesting", "generate-cliff", "40000", "-d", "1000", "-i", "1000", "--metrics-file", path)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `vesting_schedule_periods{command="generate-cliff",denom="uknow",policy="start-after-cliff"} 1`)

	_, _, err = execute(t, "vesting", "generate-cliff", "40000", "-d", "1000", "-i", "1000",
		"--metrics-file", filepath.Join(t.TempDir(), "missing", "vesting.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write metrics")
}

func TestGenerateCliff_Verbose(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "vesting", "generate-cliff", "40000", "-d", "2000", "-i", "1000")
	require.NoError(t, err)
	assert.Contains(t, stderr, "distribution 1: 20000uknow at 1000")
	assert.Contains(t, stderr, "distribution 2: 20000uknow at 2000")
	assert.Contains(t, stderr, `"run_id"`)

	_, stderr, err = execute(t, "vesting", "generate-cliff", "40000", "-d", "2000", "-i", "1000")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "distribution")
	assert.Contains(t, stderr, "schedule generated")
}

func TestGenerateCliff_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"missing flags", []string{"vesting", "generate-cliff", "40000"}, "required flag"},
		{"missing amount", []string{"vesting", "generate-cliff", "-d", "1000", "-i", "1000"}, "accepts 1 arg"},
		{"bad amount", []string{"vesting", "generate-cliff", "forty", "-d", "1000", "-i", "1000"}, "total amount"},
		{"negative interval", []string{"vesting", "generate-cliff", "1", "-d", "1000", "-i", "-5"}, "invalid argument"},
		{"overflow", []string{"generate", "340282366920938463463374607431768211456", "-d", "1000", "-i", "1000"}, "128 bits"},
		{"cliff after duration", []string{"generate", "1", "-d", "1000", "-i", "100", "-c", "2000"}, "cliff"},
		{"missing config", []string{"--config", "/nonexistent/cosmos_tools.toml", "generate", "1", "-d", "10", "-i", "1"}, "load config"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := execute(t, c.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestGenerateCliff_ZeroInterval(t *testing.T) {
	_, _, err := execute(t, "vesting", "generate-cliff", "1", "-d", "1000", "-i", "0")
	assert.True(t, errors.Is(err, vesting.ErrZeroInterval), "got %v", err)
}

func TestGenerateCliff_UnknownConfigKey(t *testing.T) {
	cfg := writeConfig(t, "[vesting]\ndenom = \"toto\"\nunknown = 1\n")
	out, _, err := execute(t, "--config", cfg, "vesting", "generate-cliff", "1", "-d", "10", "-i", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
	assert.Empty(t, out)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "cosmos-tools "+Version+"\n", out)
}
