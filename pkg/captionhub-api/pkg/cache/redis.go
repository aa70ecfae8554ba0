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
	"time"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// redisCache redis backed cache driver
type redisCache struct {
	client    *redis.Client
	KeyPrefix string
	encoding  Encoding
}

// NewRedisCache
func NewRedisCache(client *redis.Client, keyPrefix string, encoding Encoding) Driver {
	return &redisCache{
		client:    client,
		KeyPrefix: keyPrefix,
		encoding:  encoding,
	}
}

// Set data
func (c *redisCache) Set(key string, val interface{}, expiration time.Duration) error {
	buf, err := c.encoding.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "marshal cache value err, key is %+v", key)
	}

	cacheKey, err := BuildCacheKey(c.KeyPrefix, key)
	if err != nil {
		return errors.Wrapf(err, "build cache key err, key is %+v", key)
	}
	if err := c.client.Set(cacheKey, buf, expiration).Err(); err != nil {
		return errors.Wrapf(err, "redis set err, key is %+v", cacheKey)
	}
	return nil
}

// Get data
func (c *redisCache) Get(key string, val interface{}) error {
	cacheKey, err := BuildCacheKey(c.KeyPrefix, key)
	if err != nil {
		return errors.Wrapf(err, "build cache key err, key is %+v", key)
	}

	buf, err := c.client.Get(cacheKey).Bytes()
	if err != nil {
		return errors.Wrapf(err, "redis get err, key is %+v", cacheKey)
	}
	return c.encoding.Unmarshal(buf, val)
}

// Del
func (c *redisCache) Del(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	cacheKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		cacheKey, err := BuildCacheKey(c.KeyPrefix, key)
		if err != nil {
			continue
		}
		cacheKeys = append(cacheKeys, cacheKey)
	}
	if len(cacheKeys) == 0 {
		return nil
	}
	return c.client.Del(cacheKeys...).Err()
}

// Incr
func (c *redisCache) Incr(key string, step int64) (int64, error) {
	cacheKey, err := BuildCacheKey(c.KeyPrefix, key)
	if err != nil {
		return 0, errors.Wrapf(err, "build cache key err, key is %+v", key)
	}
	return c.client.IncrBy(cacheKey, step).Result()
}

// Decr
func (c *redisCache) Decr(key string, step int64) (int64, error) {
	cacheKey, err := BuildCacheKey(c.KeyPrefix, key)
	if err != nil {
		return 0, errors.Wrapf(err, "build cache key err, key is %+v", key)
	}
	return c.client.DecrBy(cacheKey, step).Result()
}
