/*
Copyright 2024 The CaptionHub Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cache

import (
	"testing"
	"time"

	"github.com/captionhub/pkg/captionhub-api/pkg/redis"
)

type payload struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func TestRedisCacheSetGetDel(t *testing.T) {
	redis.InitTestRedis()

	driver := NewRedisCache(redis.RedisClient, PrefixCacheKey, JSONEncoding{})

	in := payload{ID: 3, Name: "sunset"}
	if err := driver.Set("payload:3", in, time.Minute); err != nil {
		t.Fatalf("set err: %v", err)
	}

	var out payload
	if err := driver.Get("payload:3", &out); err != nil {
		t.Fatalf("get err: %v", err)
	}
	if out != in {
		t.Errorf("cache round trip mismatch: got %+v, want %+v", out, in)
	}

	if err := driver.Del("payload:3"); err != nil {
		t.Fatalf("del err: %v", err)
	}
	if err := driver.Get("payload:3", &out); err == nil {
		t.Error("get after del should fail")
	}
}

func TestRedisCacheIncr(t *testing.T) {
	redis.InitTestRedis()

	driver := NewRedisCache(redis.RedisClient, PrefixCacheKey, JSONEncoding{})
	n, err := driver.Incr("counter", 2)
	if err != nil {
		t.Fatalf("incr err: %v", err)
	}
	if n != 2 {
		t.Errorf("incr = %d, want 2", n)
	}
}
