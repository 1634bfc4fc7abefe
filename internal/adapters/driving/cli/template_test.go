package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
)

func TestTemplateCmd_Use(t *testing.T) {
	assert.Equal(t, "template", templateCmd.Use)
}

func TestTemplateCmd_HasSubcommands(t *testing.T) {
	commands := templateCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "register")
	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "info")
	assert.Contains(t, commandNames, "delete")
}

func TestTemplateRegisterCmd_Executes(t *testing.T) {
	_, template, _, _ := setupTestServices(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"template", "register", "一覧表.xlsx",
		"--court", "東京地方裁判所",
		"--procedure", "自己破産",
		"--description", "破産用",
	})

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Equal(t, "東京地方裁判所", template.registeredCourt)
	assert.Equal(t, "自己破産", template.registeredProcedure)
	assert.Equal(t, "一覧表.xlsx", template.registeredPath)
	assert.Equal(t, "破産用", template.registeredDesc)
	assert.Contains(t, buf.String(), "Registered template for 東京地方裁判所 (自己破産)")
}

func TestTemplateRegisterCmd_RequiresCourt(t *testing.T) {
	setupTestServices(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"template", "register", "一覧表.xlsx"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "court name is required")
}

func TestTemplateRegisterCmd_RequiresFileArg(t *testing.T) {
	setupTestServices(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"template", "register", "--court", "東京地方裁判所"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestTemplateListCmd_Executes(t *testing.T) {
	_, template, _, _ := setupTestServices(t)
	template.infos = []driven.TemplateInfo{
		{Key: "東京地方裁判所_自己破産", Extension: "xlsx", Description: "破産用", CreatedDate: "2024-05-20"},
		{Key: "大阪地方裁判所", Extension: "docx", CreatedDate: "2024-01-10"},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"template", "list"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "東京地方裁判所_自己破産")
	assert.Contains(t, out, "大阪地方裁判所")
	assert.Contains(t, out, "破産用")
	assert.Contains(t, out, "Total: 2 template(s)")
}

func TestTemplateListCmd_Empty(t *testing.T) {
	setupTestServices(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"template", "list"})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No templates registered")
}

func TestTemplateInfoCmd_Executes(t *testing.T) {
	_, template, _, _ := setupTestServices(t)
	template.info = &driven.TemplateInfo{
		Key:          "東京地方裁判所_自己破産",
		FilePath:     "/srv/templates/東京地方裁判所_自己破産/債権者一覧表.xlsx",
		Extension:    "xlsx",
		CreatedDate:  "2024-05-20",
		LastModified: "2024-05-21 09:00:00",
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"template", "info", "--court", "東京地方裁判所", "--procedure", "自己破産"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Template: 東京地方裁判所_自己破産")
	assert.Contains(t, out, "債権者一覧表.xlsx")
	assert.Contains(t, out, "2024-05-21 09:00:00")
}

func TestTemplateDeleteCmd_Executes(t *testing.T) {
	_, template, _, _ := setupTestServices(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"template", "delete", "--court", "大阪地方裁判所"})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "大阪地方裁判所", template.deletedCourt)
	assert.Empty(t, template.deletedProcedure)
	assert.Contains(t, buf.String(), "Deleted template for 大阪地方裁判所")
}
