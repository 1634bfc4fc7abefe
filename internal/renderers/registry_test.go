package renderers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
	"github.com/aikawa-legal/saikengen/internal/renderers/docx"
	"github.com/aikawa-legal/saikengen/internal/renderers/xlsx"
)

func TestRegistry_ForPath(t *testing.T) {
	registry := NewRegistry(xlsx.New(), docx.New())

	r, err := registry.ForPath("templates/東京地方裁判所/債権者一覧表.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "Excel", r.FormatName())

	r, err = registry.ForPath("templates/大阪地方裁判所/債権者一覧表.DOCX")
	require.NoError(t, err)
	assert.Equal(t, "Word", r.FormatName())
}

func TestRegistry_ForPath_UnknownExtension(t *testing.T) {
	registry := NewRegistry(xlsx.New(), docx.New())

	_, err := registry.ForPath("template.pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	_, err = registry.ForPath("template")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestRegistry_Extensions(t *testing.T) {
	registry := NewRegistry(xlsx.New(), docx.New())

	exts := registry.Extensions()
	assert.ElementsMatch(t, []string{"xlsx", "docx"}, exts)
}
