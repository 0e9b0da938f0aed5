package supabase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wireframe-to-code-backend/internal/supabase"
)

func TestStorageClient_GetPublicURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://project.supabase.co/", "test-key", "wireframes")
	require.NoError(t, err)

	url := client.GetPublicURL("wireframes/123_abcd.png")
	assert.Equal(t, "https://project.supabase.co/storage/v1/object/public/wireframes/wireframes/123_abcd.png", url)

	// Trailing slash on the base URL must not double up in the public URL.
	assert.NotContains(t, url, "co//storage")
}
