package session

import (
	"sync"
	"testing"
	"time"
)

func TestDoSerializesSameUser(t *testing.T) {
	l := NewLocks()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Do("525512345678", func() error {
				// read-modify-write without extra synchronization; the per-user
				// lock must make this safe
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Fatalf("expected 100 serialized increments, got %d", counter)
	}
}

func TestDoDifferentUsersDoNotBlock(t *testing.T) {
	l := NewLocks()

	release := make(chan struct{})
	started := make(chan struct{})
	go l.Do("user-a", func() error {
		close(started)
		<-release
		return nil
	})
	<-started

	done := make(chan struct{})
	go func() {
		l.Do("user-b", func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("user-b was blocked by user-a's lock")
	}
	close(release)
}

func TestDoReturnsFnError(t *testing.T) {
	l := NewLocks()
	wantErr := errSentinel
	if err := l.Do("user", func() error { return wantErr }); err != wantErr {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestSweepDropsIdleLocks(t *testing.T) {
	l := NewLocks()
	l.Do("user", func() error { return nil })

	if len(l.users) != 1 {
		t.Fatalf("expected 1 lock, got %d", len(l.users))
	}

	l.Sweep(0)
	if len(l.users) != 0 {
		t.Fatalf("expected locks swept, got %d", len(l.users))
	}
}

var errSentinel = &testError{}

type testError struct{}

func (*testError) Error() string { return "boom" }
