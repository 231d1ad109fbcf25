package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-admin-config/models"
)

func TestParseMergeMode(t *testing.T) {
	mode, err := ParseMergeMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeRename, mode)

	mode, err = ParseMergeMode("merge")
	require.NoError(t, err)
	assert.Equal(t, ModeMerge, mode)

	_, err = ParseMergeMode("append")
	assert.ErrorIs(t, err, ErrUnknownMergeMode)
}

func TestNewNormalizer_DefaultsToRename(t *testing.T) {
	n, err := NewNormalizer("")
	require.NoError(t, err)
	assert.Equal(t, ModeRename, n.Mode())
}

func TestNewNormalizer_RejectsUnknownMode(t *testing.T) {
	n, err := NewNormalizer("bogus")
	assert.Nil(t, n)
	assert.ErrorIs(t, err, ErrUnknownMergeMode)
}

func sameKeyTwoFragments() []models.Fragment {
	return []models.Fragment{
		fragment("a.yaml", named("Product", models.FullConfig(map[string]any{
			"class": `App\Entity\Product`,
			"list":  map[string]any{"title": "Products"},
		}))),
		fragment("b.yaml", named("Product", models.FullConfig(map[string]any{
			"class": `App\Entity\Product`,
			"edit":  map[string]any{"title": "Edit"},
		}))),
	}
}

func TestNormalizer_RenameMode(t *testing.T) {
	n, err := NewNormalizer(ModeRename)
	require.NoError(t, err)

	cfg, err := n.Normalize(sameKeyTwoFragments())
	require.NoError(t, err)

	assert.Equal(t, []string{"Product", "Product2"}, cfg.Names())
}

func TestNormalizer_MergeMode(t *testing.T) {
	n, err := NewNormalizer(ModeMerge)
	require.NoError(t, err)

	cfg, err := n.Normalize(sameKeyTwoFragments())
	require.NoError(t, err)
	require.Equal(t, []string{"Product"}, cfg.Names())

	product, _ := cfg.Entity("Product")
	assert.Equal(t, map[string]any{"title": "Products"}, product.Options["list"])
	assert.Equal(t, map[string]any{"title": "Edit"}, product.Options["edit"])
}

func TestNormalizer_PropagatesErrors(t *testing.T) {
	n, err := NewNormalizer(ModeMerge)
	require.NoError(t, err)

	cfg, err := n.Normalize([]models.Fragment{list(`App\1st`)})
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidName)
}
