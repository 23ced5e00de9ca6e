package image

import (
	"errors"
	"sync"
	"testing"
)

func TestPool_GetPut(t *testing.T) {
	pool := NewPool(2)

	buf := pool.Get(8, 8, FormatRGBAPremul)
	if buf == nil {
		t.Fatal("Get returned nil")
	}
	fill(buf, 1, 1, 1, 1)
	pool.Put(buf)

	if got := pool.Len(8, 8, FormatRGBAPremul); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}

	reused := pool.Get(8, 8, FormatRGBAPremul)
	if reused != buf {
		t.Error("expected the pooled buffer to be reused")
	}
	for i, v := range reused.RGBA().Pix {
		if v != 0 {
			t.Fatalf("reused buffer not cleared at byte %d", i)
		}
	}
}

func TestPool_BucketCapacity(t *testing.T) {
	pool := NewPool(1)
	a := pool.Get(4, 4, FormatRGBAPremul)
	b := pool.Get(4, 4, FormatRGBAPremul)

	pool.Put(a)
	pool.Put(b)
	pool.Put(nil)

	if got := pool.Len(4, 4, FormatRGBAPremul); got != 1 {
		t.Errorf("Len() = %d, want 1 (bucket capped)", got)
	}
}

func TestPool_SeparatesSizes(t *testing.T) {
	pool := NewPool(0)
	pool.Put(pool.Get(4, 4, FormatRGBAPremul))

	if got := pool.Get(5, 4, FormatRGBAPremul); got.Width() != 5 {
		t.Errorf("Get(5,4) width = %d, want 5", got.Width())
	}
	if got := pool.Len(4, 4, FormatRGBAPremul); got != 1 {
		t.Errorf("4x4 bucket = %d, want 1", got)
	}
}

func TestPool_Acquire(t *testing.T) {
	pool := NewPool(4)

	buf, release, err := pool.Acquire(16, 16, FormatRGBAPremul)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if buf.Width() != 16 {
		t.Errorf("width = %d, want 16", buf.Width())
	}

	release()
	release()
	if got := pool.Len(16, 16, FormatRGBAPremul); got != 1 {
		t.Errorf("Len() after double release = %d, want 1", got)
	}
}

func TestPool_AcquireInvalid(t *testing.T) {
	pool := NewPool(4)

	if _, release, err := pool.Acquire(0, 16, FormatRGBAPremul); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Acquire(0,16) error = %v, want ErrInvalidDimensions", err)
	} else {
		release()
	}
	if _, _, err := pool.Acquire(4, 4, Format(42)); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Acquire(bad format) error = %v, want ErrInvalidFormat", err)
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(8)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				buf, release, err := pool.Acquire(32, 32, FormatRGBAPremul)
				if err != nil {
					t.Error(err)
					return
				}
				fill(buf, 1, 2, 3, 4)
				release()
			}
		}()
	}
	wg.Wait()

	if got := pool.Len(32, 32, FormatRGBAPremul); got > 8 {
		t.Errorf("Len() = %d, exceeds bucket cap 8", got)
	}
}

func TestDefaultPool(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}
}
