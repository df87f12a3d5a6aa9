package memory

import (
	"fmt"
	"testing"
	"time"
)

func TestGet_HitMiss(t *testing.T) {
	c := NewCache[string, int]("test-hitmiss", 2, 5*time.Minute)

	// miss
	if _, ok := c.Get("k1"); ok {
		t.Fatalf("expected miss before Put")
	}

	// hit после Put
	c.Put("k1", 42)
	got, ok := c.Get("k1")
	if !ok || got != 42 {
		t.Fatalf("expected hit with 42, got %v ok=%v", got, ok)
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewCache[string, int]("test-ttl", 2, 100*time.Millisecond)

	c.Put("ttl", 1)
	if _, ok := c.Get("ttl"); !ok {
		t.Fatalf("expected hit right after Put")
	}
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get("ttl"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
}

func TestTTL_GetDoesNotRefresh(t *testing.T) {
	c := NewCache[string, int]("test-norefresh", 2, 150*time.Millisecond)

	c.Put("k", 1)
	time.Sleep(100 * time.Millisecond)
	// Чтение не должно продлевать TTL.
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected hit before expiry")
	}
	time.Sleep(100 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("Get must not refresh TTL")
	}
}

func TestEviction_FIFOByInsertion(t *testing.T) {
	// Ёмкость 5: шестой ключ вытесняет первый вставленный и никакой другой.
	c := NewCache[string, int]("test-fifo", 5, 0) // 0 = без TTL

	for i := 1; i <= 5; i++ {
		c.Put(fmt.Sprintf("k%d", i), i)
	}

	// Чтение k1 не делает его "свежим" — кэш не продвигает по Get.
	if _, ok := c.Get("k1"); !ok {
		t.Fatalf("expected hit for k1")
	}

	c.Put("k6", 6)

	if _, ok := c.Get("k1"); ok {
		t.Fatalf("expected k1 (first inserted) to be evicted")
	}
	for i := 2; i <= 6; i++ {
		if _, ok := c.Get(fmt.Sprintf("k%d", i)); !ok {
			t.Fatalf("expected k%d to survive", i)
		}
	}
	if c.Len() != 5 {
		t.Fatalf("size must stay <= capacity, got %d", c.Len())
	}
}

func TestPut_OverwriteKeepsSingleEntry(t *testing.T) {
	c := NewCache[string, int]("test-overwrite", 2, time.Minute)

	c.Put("k", 1)
	c.Put("k", 2)

	if c.Len() != 1 {
		t.Fatalf("overwrite must keep a single live entry, got %d", c.Len())
	}
	if got, _ := c.Get("k"); got != 2 {
		t.Fatalf("want overwritten value 2, got %v", got)
	}
}

func TestRemove_AllowsRetry(t *testing.T) {
	c := NewCache[string, int]("test-remove", 2, time.Minute)

	c.Put("failed", 1)
	c.Remove("failed")

	if _, ok := c.Get("failed"); ok {
		t.Fatalf("removed key must miss")
	}
	// Повторный Remove несуществующего ключа не должен паниковать.
	c.Remove("failed")
}

func TestSharedHandle_SamePointerForConcurrentReaders(t *testing.T) {
	// Значение-хэндл: все читатели одного ключа видят один и тот же указатель.
	type pending struct{ done chan struct{} }

	c := NewCache[string, *pending]("test-handle", 2, time.Minute)
	h := &pending{done: make(chan struct{})}
	c.Put("q", h)

	got1, _ := c.Get("q")
	got2, _ := c.Get("q")
	if got1 != h || got2 != h {
		t.Fatalf("cache must hand out the same pending handle")
	}
}
