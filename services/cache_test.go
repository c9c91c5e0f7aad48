package services

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCacheService(time.Minute, time.Minute)

	c.Set("key", "value", time.Minute)
	got, found := c.Get("key")
	if !found || got != "value" {
		t.Errorf("Get = %v, %v; want value, true", got, found)
	}

	if _, found := c.Get("missing"); found {
		t.Error("Get(missing) found = true")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCacheService(time.Minute, time.Minute)

	c.Set("key", "value", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("key"); found {
		t.Error("expired entry still returned")
	}
}

func TestCacheStoresNil(t *testing.T) {
	// "Нет данных" — валидный закэшированный ответ, он не должен
	// выглядеть как промах
	c := NewCacheService(time.Minute, time.Minute)

	c.Set("empty-day", nil, time.Minute)
	got, found := c.Get("empty-day")
	if !found {
		t.Fatal("cached nil reported as miss")
	}
	if got != nil {
		t.Errorf("Get = %v, want nil", got)
	}
}

func TestCacheClearPrefix(t *testing.T) {
	c := NewCacheService(time.Minute, time.Minute)

	c.Set("schedule:groups:42:2026-03-02", 1, time.Minute)
	c.Set("schedule:groups:42:2026-03-03", 2, time.Minute)
	c.Set("schedule:groups:17:2026-03-02", 3, time.Minute)

	c.ClearPrefix("schedule:groups:42:")

	if _, found := c.Get("schedule:groups:42:2026-03-02"); found {
		t.Error("prefixed key survived ClearPrefix")
	}
	if _, found := c.Get("schedule:groups:42:2026-03-03"); found {
		t.Error("prefixed key survived ClearPrefix")
	}
	if _, found := c.Get("schedule:groups:17:2026-03-02"); !found {
		t.Error("unrelated key removed by ClearPrefix")
	}
}

func TestCacheFlush(t *testing.T) {
	c := NewCacheService(time.Minute, time.Minute)

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Flush()

	if _, found := c.Get("a"); found {
		t.Error("key survived Flush")
	}
	if _, found := c.Get("b"); found {
		t.Error("key survived Flush")
	}
}
