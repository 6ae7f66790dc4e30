package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nextroute-dev/nextroute/internal/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) route.Normalized {
	t.Helper()
	n, err := route.Parse(raw)
	require.NoError(t, err)
	return n
}

func TestBuildPlanStatic(t *testing.T) {
	root := filepath.Join(t.TempDir(), "app")
	plan, err := BuildPlan(root, Request{Route: mustParse(t, "Service/View"), Variant: Static}, Options{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "service", "view"), plan.Destination)
	assert.Equal(t, "service/view", plan.RelDestination())
	assert.Equal(t, "ViewPage", plan.Symbol)
	assert.Equal(t, []string{".", "types", "componentes"}, plan.Dirs)

	require.Len(t, plan.Files, 3)
	assert.Equal(t, "page.tsx", plan.Files[0].Path)
	assert.Contains(t, plan.Files[0].Content, "const ViewPage =")
	assert.Equal(t, File{Path: "types/store.type.ts"}, plan.Files[1])
	assert.Equal(t, File{Path: "store.ts"}, plan.Files[2])
}

func TestBuildPlanDynamic(t *testing.T) {
	root := filepath.Join(t.TempDir(), "app")
	plan, err := BuildPlan(root, Request{Route: mustParse(t, "users"), Param: "userId", Variant: DynamicCurrent}, Options{PageExtension: "jsx"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "users", "[userId]"), plan.Destination)
	assert.Equal(t, "users/[userId]", plan.RelDestination())
	assert.Equal(t, "page.jsx", plan.Files[0].Path)
	assert.Contains(t, plan.Files[0].Content, "await params")
}

func TestBuildPlanRejectsBadInput(t *testing.T) {
	root := t.TempDir()

	_, err := BuildPlan(root, Request{Variant: Static}, Options{})
	assert.ErrorIs(t, err, route.ErrInvalidRouteName)

	_, err = BuildPlan(root, Request{Route: mustParse(t, "users"), Param: "id1", Variant: DynamicLegacy}, Options{})
	assert.ErrorIs(t, err, route.ErrInvalidParamName)

	_, err = BuildPlan(root, Request{Route: mustParse(t, "users"), Variant: DynamicLegacy}, Options{})
	assert.ErrorIs(t, err, route.ErrInvalidParamName)
}

func TestPlanExisting(t *testing.T) {
	root := t.TempDir()
	plan, err := BuildPlan(root, Request{Route: mustParse(t, "blog"), Variant: Static}, Options{})
	require.NoError(t, err)
	assert.Empty(t, plan.Existing(OSFS{}))

	require.NoError(t, os.MkdirAll(plan.Destination, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(plan.Destination, "store.ts"), []byte("x"), 0644))
	assert.Equal(t, []string{"store.ts"}, plan.Existing(OSFS{}))

	assert.NoError(t, plan.checkOverwrite(OSFS{}, Options{Overwrite: true}))
	assert.ErrorIs(t, plan.checkOverwrite(OSFS{}, Options{Overwrite: false}), ErrRouteExists)
}
