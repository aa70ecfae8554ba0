package cache

import (
	"time"

	"github.com/muesli/cache2go"
)

const (
	USER    CacheModule = "USER"
	CAPTION CacheModule = "CAPTION"
	SHARE   CacheModule = "SHARE"

	// OUT_OF_DATE is how long cached entries stay valid
	OUT_OF_DATE = 10 * time.Minute
)

type CacheModule string

func Module(cacheModule CacheModule) *cache2go.CacheTable {
	return cache2go.Cache(string(cacheModule))
}
