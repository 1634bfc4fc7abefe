package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
)

func TestCreditorCmd_Use(t *testing.T) {
	assert.Equal(t, "creditor", creditorCmd.Use)
}

func TestCreditorCmd_HasSubcommands(t *testing.T) {
	commands := creditorCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "import")
	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "debtors")
	assert.Contains(t, commandNames, "delete")
}

func TestCreditorImportCmd_Executes(t *testing.T) {
	_, _, creditor, _ := setupTestServices(t)
	creditor.count = 3

	jsonPath := filepath.Join(t.TempDir(), "creditors.json")
	content := []byte(`[{"debtor_name": "山田太郎"}]`)
	require.NoError(t, os.WriteFile(jsonPath, content, 0o644))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"creditor", "import", jsonPath})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, content, creditor.importedData)
	assert.Contains(t, buf.String(), "Imported 3 record(s)")
}

func TestCreditorImportCmd_MissingFile(t *testing.T) {
	setupTestServices(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"creditor", "import", filepath.Join(t.TempDir(), "missing.json")})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read import file")
}

func TestCreditorListCmd_Executes(t *testing.T) {
	_, _, creditor, _ := setupTestServices(t)
	creditor.records = []domain.CreditorRecord{
		{CompanyName: "A社", BranchName: "新宿支店", ClaimName: "貸付金", ClaimAmount: "1,000", RegistrationDate: "2024-05-20"},
		{CompanyName: "B社"},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"creditor", "list", "山田太郎"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1. A社 新宿支店")
	assert.Contains(t, out, "Claim:  貸付金")
	assert.Contains(t, out, "Amount: 1,000")
	assert.Contains(t, out, "2. B社")
	assert.Contains(t, out, "Total: 2 record(s)")
}

func TestCreditorListCmd_Empty(t *testing.T) {
	setupTestServices(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"creditor", "list", "山田太郎"})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No records found for debtor: 山田太郎")
}

func TestCreditorDebtorsCmd_Executes(t *testing.T) {
	_, _, creditor, _ := setupTestServices(t)
	creditor.debtors = []string{"山田太郎", "田中花子"}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"creditor", "debtors"})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "山田太郎")
	assert.Contains(t, buf.String(), "田中花子")
}

func TestCreditorDeleteCmd_Executes(t *testing.T) {
	_, _, creditor, _ := setupTestServices(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"creditor", "delete", "山田太郎"})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "山田太郎", creditor.deleted)
	assert.Contains(t, buf.String(), "Deleted records for 山田太郎")
}

func TestCreditorDeleteCmd_NotFound(t *testing.T) {
	_, _, creditor, _ := setupTestServices(t)
	creditor.err = domain.ErrNotFound

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"creditor", "delete", "山田太郎"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
