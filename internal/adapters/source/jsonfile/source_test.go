package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/vendorsync/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadAggregate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "all_products.json", `[
		{"product_name": "Bifold Door"},
		{"product_name": "Sliding Door"}
	]`)
	// los individuales se ignoran cuando está el agregado
	writeFile(t, dir, "corner.json", `{"product_name": "Corner Entry"}`)

	products, err := New(dir, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Bifold Door", products[0].ProductName)
	assert.Equal(t, "Sliding Door", products[1].ProductName)
}

func TestLoadPerFileOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_sliding.json", `{"product_name": "Sliding Door"}`)
	writeFile(t, dir, "a_bifold.json", `{"product_name": "Bifold Door"}`)
	writeFile(t, dir, "notes.txt", "ignorar")

	products, err := New(dir, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	// orden lexicográfico estable
	assert.Equal(t, "Bifold Door", products[0].ProductName)
	assert.Equal(t, "Sliding Door", products[1].ProductName)
}

func TestLoadMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), zerolog.Nop()).Load(context.Background())
	var dsErr *domain.DataSourceError
	require.True(t, errors.As(err, &dsErr))
}

func TestLoadBadJSONFailsFast(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_ok.json", `{"product_name": "Bifold Door"}`)
	writeFile(t, dir, "b_bad.json", `{not json`)

	products, err := New(dir, zerolog.Nop()).Load(context.Background())
	var dsErr *domain.DataSourceError
	require.True(t, errors.As(err, &dsErr))
	// sin catálogo parcial
	assert.Nil(t, products)
}

func TestLoadBadAggregate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "all_products.json", `{"not": "a list"}`)

	_, err := New(dir, zerolog.Nop()).Load(context.Background())
	var dsErr *domain.DataSourceError
	require.True(t, errors.As(err, &dsErr))
}
