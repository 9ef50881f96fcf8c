package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML(t *testing.T) {
	m, err := FromYAML([]byte(`
products:
  - id: Apple
    aliases: [apple, a]
  - id: Pear
    enabled: false
`))
	require.NoError(t, err)
	require.Len(t, m.Products, 2)

	apple := m.Products[0]
	assert.Equal(t, "Apple", apple.ID)
	assert.True(t, apple.IsEnabled())
	assert.Equal(t, []string{"apple", "a"}, apple.Aliases)

	pear := m.Products[1]
	assert.Equal(t, "Pear", pear.ID)
	assert.False(t, pear.IsEnabled())
	assert.Empty(t, pear.Aliases)
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("products: [half"))
	assert.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	m, err := FromJSON([]byte(`{"products":[{"id":"Apple","aliases":["apple"]}]}`))
	require.NoError(t, err)
	require.Len(t, m.Products, 1)
	assert.Equal(t, "Apple", m.Products[0].ID)
	assert.True(t, m.Products[0].IsEnabled())
}

func TestValidateDuplicateProduct(t *testing.T) {
	_, err := FromYAML([]byte(`
products:
  - id: Apple
  - id: Apple
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateProduct)
}

func TestValidateSelfAlias(t *testing.T) {
	_, err := FromYAML([]byte(`
products:
  - id: Apple
    aliases: [Apple]
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSelfAlias)
}

func TestValidateMissingID(t *testing.T) {
	_, err := FromYAML([]byte(`
products:
  - aliases: [apple]
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingProductID)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "products.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("products:\n  - id: Apple\n"), 0o644))

	m, err := FromFile(yamlPath)
	require.NoError(t, err)
	require.Len(t, m.Products, 1)
	assert.Equal(t, "Apple", m.Products[0].ID)

	jsonPath := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"products":[{"id":"Pear"}]}`), 0o644))

	m, err = FromFile(jsonPath)
	require.NoError(t, err)
	require.Len(t, m.Products, 1)
	assert.Equal(t, "Pear", m.Products[0].ID)
}

func TestFromFileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

	_, err := FromFile(path)
	assert.ErrorContains(t, err, "unsupported manifest file extension")
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
