package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserPasswordEncryptCompare(t *testing.T) {
	u := &UserBaseModel{
		Username: "demo_user",
		Password: "superSecret1",
		Email:    "demo@example.com",
	}

	require.NoError(t, u.Encrypt())
	require.NotEqual(t, "superSecret1", u.Password)

	require.NoError(t, u.Compare("superSecret1"))
	require.Error(t, u.Compare("wrongPassword"))
}

func TestCaptionInfoStripsBlobs(t *testing.T) {
	c := &CaptionModel{
		ID:        7,
		UserId:    3,
		Caption:   "a cat on a couch",
		Format:    "jpeg",
		Width:     640,
		Height:    480,
		Image:     []byte{1, 2, 3},
		Thumbnail: []byte{4, 5},
		IsPublic:  true,
	}

	info := c.Info()
	require.Equal(t, uint64(7), info.ID)
	require.Equal(t, "a cat on a couch", info.Caption)
	require.Equal(t, 640, info.Width)
	require.True(t, info.IsPublic)
}

func TestCaptionOwned(t *testing.T) {
	require.False(t, (&CaptionModel{}).Owned())
	require.True(t, (&CaptionModel{UserId: 9}).Owned())
}
