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
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

type memoryCache struct {
	client    *sync.Map
	counters  *sync.Map
	KeyPrefix string
	encoding  Encoding
}

// NewMemoryCache
func NewMemoryCache(keyPrefix string, encoding Encoding) Driver {
	return &memoryCache{
		client:    &sync.Map{},
		counters:  &sync.Map{},
		KeyPrefix: keyPrefix,
		encoding:  encoding,
	}
}

// itemWithTTL
type itemWithTTL struct {
	expires int64
	value   []byte
}

// newItem
func newItem(value []byte, expires time.Duration) itemWithTTL {
	expires64 := int64(expires)
	if expires > 0 {
		expires64 = time.Now().Unix() + int64(expires.Seconds())
	}
	return itemWithTTL{
		value:   value,
		expires: expires64,
	}
}

// getValue
func getValue(item interface{}, ok bool) ([]byte, bool) {
	if !ok {
		return nil, false
	}

	var itemObj itemWithTTL
	if itemObj, ok = item.(itemWithTTL); !ok {
		return nil, false
	}

	if itemObj.expires > 0 && itemObj.expires < time.Now().Unix() {
		return nil, false
	}

	return itemObj.value, true
}

// Set data
func (m *memoryCache) Set(key string, val interface{}, expiration time.Duration) error {
	cacheKey, err := BuildCacheKey(m.KeyPrefix, key)
	if err != nil {
		return errors.Wrapf(err, "build cache key err, key is %+v", key)
	}
	buf, err := m.encoding.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "marshal cache value err, key is %+v", key)
	}
	m.client.Store(cacheKey, newItem(buf, expiration))
	return nil
}

// Get data
func (m *memoryCache) Get(key string, val interface{}) error {
	cacheKey, err := BuildCacheKey(m.KeyPrefix, key)
	if err != nil {
		return errors.Wrapf(err, "build cache key err, key is %+v", key)
	}
	buf, ok := getValue(m.client.Load(cacheKey))
	if !ok {
		return errors.New("memory get value err")
	}
	return m.encoding.Unmarshal(buf, val)
}

// Del
func (m *memoryCache) Del(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	for _, key := range keys {
		cacheKey, err := BuildCacheKey(m.KeyPrefix, key)
		if err != nil {
			log.Warnf("build cache key err: %+v, key is %+v", err, key)
			continue
		}
		m.client.Delete(cacheKey)
	}
	return nil
}

// Incr
func (m *memoryCache) Incr(key string, step int64) (int64, error) {
	cacheKey, err := BuildCacheKey(m.KeyPrefix, key)
	if err != nil {
		return 0, errors.Wrapf(err, "build cache key err, key is %+v", key)
	}
	v, _ := m.counters.LoadOrStore(cacheKey, new(int64))
	return atomic.AddInt64(v.(*int64), step), nil
}

// Decr
func (m *memoryCache) Decr(key string, step int64) (int64, error) {
	return m.Incr(key, -step)
}
