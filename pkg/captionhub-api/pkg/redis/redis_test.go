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

package redis

import (
	"testing"
	"time"
)

func TestInitTestRedis(t *testing.T) {
	InitTestRedis()

	err := RedisClient.Ping().Err()
	if err != nil {
		t.Error("ping redis server err: ", err)
		return
	}
	t.Log("ping redis server pass")
}

func TestRedisSetGet(t *testing.T) {
	InitTestRedis()

	var setGetKey = "test-set"
	var setGetValue = "test-content"
	RedisClient.Set(setGetKey, setGetValue, time.Second*100)

	expectValue := RedisClient.Get(setGetKey).Val()
	if setGetValue != expectValue {
		t.Log("original value: ", setGetValue)
		t.Log("expect value: ", expectValue)
		return
	}

	t.Log("redis set get test pass")
}

func TestLockUnlock(t *testing.T) {
	InitTestRedis()

	lock := NewLock(RedisClient, "test-lock", time.Minute)
	token := lock.GenToken()

	ok, err := lock.Lock(token)
	if err != nil || !ok {
		t.Fatalf("first lock acquire err: %v, ok: %v", err, ok)
	}

	ok, _ = lock.Lock(lock.GenToken())
	if ok {
		t.Error("second lock acquire should fail while held")
	}

	if err := lock.Unlock(token); err != nil {
		t.Errorf("unlock err: %v", err)
	}
}
