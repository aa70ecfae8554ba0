package share

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestShareURL(t *testing.T) {
	viper.Set("app.url", "http://example.com/")
	srv := &shareService{}

	require.Equal(t, "http://example.com/s/abc123", srv.ShareURL("abc123"))
}

func TestSocialLinks(t *testing.T) {
	viper.Set("app.url", "http://example.com")
	srv := &shareService{}

	links := srv.SocialLinks("a dog on the beach")

	require.Len(t, links, 5)
	require.Equal(t, "https://twitter.com/intent/tweet?text=a%20dog%20on%20the%20beach", links["twitter"])
	require.Contains(t, links["facebook"], "quote=a%20dog%20on%20the%20beach")
	require.Contains(t, links["linkedin"], "title=Image%20Caption")
	require.True(t, strings.HasPrefix(links["whatsapp"], "https://wa.me/?text="))
	require.True(t, strings.HasPrefix(links["email"], "mailto:?subject="))
	// mail clients render + literally, spaces must arrive as %20
	require.Equal(t, "mailto:?subject=Check%20out%20this%20image%20caption&body=a%20dog%20on%20the%20beach", links["email"])
	require.NotContains(t, links["email"], "+")
}
