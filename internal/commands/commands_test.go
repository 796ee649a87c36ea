package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "ledgerlens-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "ledgerlens")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/ledgerlens")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runLedgerlens(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}

const testLedger = `id,timestamp,kind,counterparty,credit,debit,balance,description
1,2024-01-01 09:00:00,bank,Payroll Inc,100,0,100,salary
2,2024-01-01 12:00:00,peer-to-peer,Bob,0,30,70,lunch split
3,2024-01-03 10:00:00,merchant,Corner Cafe,0,20,50,coffee
`

func writeTestLedger(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte(testLedger), 0o644))
	return path
}

func TestInit_CreatesProject(t *testing.T) {
	dir := t.TempDir()
	_, err := runLedgerlens(t, dir, "init", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "ledgerlens.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "path: ledger.csv")

	ledgerData, err := os.ReadFile(filepath.Join(dir, "ledger.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(ledgerData), "id,timestamp,kind")
}

func TestInit_RefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := runLedgerlens(t, dir, "init", dir)
	require.NoError(t, err)

	out, err := runLedgerlens(t, dir, "init", dir)
	require.Error(t, err)
	assert.Contains(t, out, "already exists")
}

func TestFlow_Week(t *testing.T) {
	path := writeTestLedger(t)
	out, err := runLedgerlens(t, filepath.Dir(path), "flow",
		"--ledger", path, "--as-of", "2024-01-03", "--json")
	require.NoError(t, err)

	// Exactly 7 buckets, newest ends on the reference day (a Wednesday).
	assert.Equal(t, 7, strings.Count(out, `"label"`))
	assert.Contains(t, out, `"Wed"`)
	assert.Contains(t, out, `"income": "100"`)
}

func TestBalance_Month(t *testing.T) {
	path := writeTestLedger(t)
	out, err := runLedgerlens(t, filepath.Dir(path), "balance",
		"--ledger", path, "--as-of", "2024-01-03", "--range", "month", "--json")
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(out, `"label"`))
	assert.Contains(t, out, "This week")
	assert.Contains(t, out, "Last week")
}

func TestContacts_TopByCount(t *testing.T) {
	path := writeTestLedger(t)
	out, err := runLedgerlens(t, filepath.Dir(path), "contacts",
		"--ledger", path, "--top", "1", "--json")
	require.NoError(t, err)

	assert.Contains(t, out, "Payroll Inc")
	assert.NotContains(t, out, "Corner Cafe")
}

func TestMerchants(t *testing.T) {
	path := writeTestLedger(t)
	out, err := runLedgerlens(t, filepath.Dir(path), "merchants",
		"--ledger", path, "--json")
	require.NoError(t, err)

	assert.Contains(t, out, "Corner Cafe")
	assert.NotContains(t, out, "Bob")
}

func TestContactDetail(t *testing.T) {
	path := writeTestLedger(t)
	out, err := runLedgerlens(t, filepath.Dir(path), "contact", "Bob",
		"--ledger", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Bob: 1 transactions")
	assert.Contains(t, out, "sent 30.00")
}

func TestSummary(t *testing.T) {
	path := writeTestLedger(t)
	out, err := runLedgerlens(t, filepath.Dir(path), "summary",
		"--ledger", path, "--json")
	require.NoError(t, err)

	assert.Contains(t, out, `"transactions": 3`)
	assert.Contains(t, out, `"balance": "50"`)
}

func TestHeatmap_JSON(t *testing.T) {
	path := writeTestLedger(t)
	out, err := runLedgerlens(t, filepath.Dir(path), "heatmap",
		"--ledger", path, "--as-of", "2024-01-03", "--days", "7", "--json")
	require.NoError(t, err)

	assert.Equal(t, 7, strings.Count(out, `"date"`))
	assert.Contains(t, out, `"intensity": "low"`)
	assert.Contains(t, out, `"intensity": "none"`)
}

func TestImport_AppendsToLedger(t *testing.T) {
	dir := t.TempDir()
	ledgerPath := filepath.Join(dir, "ledger.csv")
	stmtPath := filepath.Join(dir, "statement.csv")
	stmt := "Date,Description,Type,Party,Money In,Money Out,Balance\n" +
		"2024-02-01 10:00:00,refund,merchant,ShopCo,15.00,,65.00\n"
	require.NoError(t, os.WriteFile(ledgerPath, []byte(testLedger), 0o644))
	require.NoError(t, os.WriteFile(stmtPath, []byte(stmt), 0o644))

	out, err := runLedgerlens(t, dir, "import", stmtPath, "--ledger", ledgerPath)
	require.NoError(t, err, out)
	assert.Contains(t, out, "imported 1 transactions")

	data, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ShopCo")
	// IDs continue from the existing maximum.
	assert.Contains(t, string(data), "4,2024-02-01 10:00:00")
}

func TestFlow_BadAsOf(t *testing.T) {
	path := writeTestLedger(t)
	out, err := runLedgerlens(t, filepath.Dir(path), "flow",
		"--ledger", path, "--as-of", "yesterday")
	require.Error(t, err)
	assert.Contains(t, out, "parsing --as-of")
}

func TestExport_WritesReport(t *testing.T) {
	path := writeTestLedger(t)
	outPath := filepath.Join(filepath.Dir(path), "report.json")
	out, err := runLedgerlens(t, filepath.Dir(path), "export",
		"--ledger", path, "--as-of", "2024-01-03", "--out", outPath)
	require.NoError(t, err, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	report := string(data)
	assert.Contains(t, report, `"asOf": "2024-01-03"`)
	assert.Contains(t, report, `"weekFlow"`)
	assert.Contains(t, report, `"monthBalance"`)
	assert.Contains(t, report, `"topMerchants"`)
}
