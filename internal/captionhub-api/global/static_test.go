package global

import (
	"testing"

	"github.com/spf13/viper"
)

func TestMaxUploadBytes(t *testing.T) {
	defer viper.Set("app.max_upload_mb", nil)

	viper.Set("app.max_upload_mb", 4)
	if got := MaxUploadBytes(); got != 4<<20 {
		t.Errorf("MaxUploadBytes() = %d, want %d", got, 4<<20)
	}

	// unconfigured and nonsense values fall back to the default
	viper.Set("app.max_upload_mb", 0)
	if got := MaxUploadBytes(); got != DefaultMaxUploadMb<<20 {
		t.Errorf("MaxUploadBytes() fallback = %d, want %d", got, int64(DefaultMaxUploadMb)<<20)
	}

	viper.Set("app.max_upload_mb", -3)
	if got := MaxUploadBytes(); got != DefaultMaxUploadMb<<20 {
		t.Errorf("MaxUploadBytes() negative = %d, want %d", got, int64(DefaultMaxUploadMb)<<20)
	}
}
