package session

import (
	"sync"
	"testing"
)

func TestStore_StartsUnauthenticated(t *testing.T) {
	s := NewStore()

	id, ok := s.Active()
	if ok {
		t.Fatalf("fresh store reports active session id=%d", id)
	}
}

func TestStore_SetActiveAndClear(t *testing.T) {
	s := NewStore()

	s.SetActive(7)
	id, ok := s.Active()
	if !ok || id != 7 {
		t.Fatalf("Active() = (%d, %v), want (7, true)", id, ok)
	}

	s.Clear()
	if _, ok = s.Active(); ok {
		t.Fatal("expected no active session after Clear")
	}
}

func TestStore_RejectsNonPositiveIDs(t *testing.T) {
	s := NewStore()

	s.SetActive(0)
	if _, ok := s.Active(); ok {
		t.Fatal("SetActive(0) must leave the store unauthenticated")
	}

	s.SetActive(3)
	s.SetActive(-1)
	if _, ok := s.Active(); ok {
		t.Fatal("SetActive(-1) must clear the active session")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			s.SetActive(id)
		}(int64(i))
		go func() {
			defer wg.Done()
			if id, ok := s.Active(); ok && id <= 0 {
				t.Errorf("observed committed session with non-positive id %d", id)
			}
		}()
	}
	wg.Wait()
}
