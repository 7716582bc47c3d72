package helper

import (
	"strings"
	"sync"
	"testing"
)

func TestGenerateReference_Format(t *testing.T) {
	ref := GenerateReference()
	if !strings.HasPrefix(ref, "TH") {
		t.Fatalf("reference %q has no TH prefix", ref)
	}
	if ref != strings.ToUpper(ref) {
		t.Fatalf("reference %q is not upper case", ref)
	}
	for _, r := range ref[2:] {
		if !strings.ContainsRune(base36, r) {
			t.Fatalf("reference %q contains %q", ref, r)
		}
	}
	// 8 time chars until the year 2059, plus 4 random chars
	if len(ref) < 2+8+4 || len(ref) > 32 {
		t.Fatalf("reference %q has unexpected length %d", ref, len(ref))
	}
}

func TestGenerateReference_DistinctInTightLoop(t *testing.T) {
	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		ref := GenerateReference()
		if _, dup := seen[ref]; dup {
			t.Fatalf("duplicate reference %q after %d calls", ref, i)
		}
		seen[ref] = struct{}{}
	}
}

func TestGenerateReference_DistinctAcrossGoroutines(t *testing.T) {
	const workers, each = 8, 500
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*each)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, each)
			for i := 0; i < each; i++ {
				local = append(local, GenerateReference())
			}
			mu.Lock()
			for _, r := range local {
				seen[r] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	if len(seen) != workers*each {
		t.Fatalf("got %d distinct references, want %d", len(seen), workers*each)
	}
}
