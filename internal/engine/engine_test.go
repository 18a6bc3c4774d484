package engine

import (
	"testing"

	"bumppool/internal/blockmap"
)

func mustNew(t *testing.T, capacity uint64) *Allocator {
	t.Helper()
	a, err := New(capacity)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestScenarioBumpOnly(t *testing.T) {
	a := mustNew(t, 1000)

	a1, ok := a.Allocate(100)
	if !ok {
		t.Fatal("Allocate(100) failed")
	}
	a2, ok := a.Allocate(200)
	if !ok {
		t.Fatal("Allocate(200) failed")
	}
	a3, ok := a.Allocate(50)
	if !ok {
		t.Fatal("Allocate(50) failed")
	}

	if a2 != a1+100 {
		t.Errorf("a2 = %d, want %d", a2, a1+100)
	}
	if a3 != a1+300 {
		t.Errorf("a3 = %d, want %d", a3, a1+300)
	}
	if a.pool.Used() != 350 {
		t.Errorf("Used = %d, want 350", a.pool.Used())
	}
	if a.st.AllocsFromBump != 3 {
		t.Errorf("AllocsFromBump = %d, want 3", a.st.AllocsFromBump)
	}
	if a.m.Len() != 3 {
		t.Errorf("map has %d entries, want 3", a.m.Len())
	}
}

func TestScenarioRecycleExactFit(t *testing.T) {
	// Capacity matches the three allocations exactly, so the bump path is
	// exhausted afterward and the refill must come from recycle.
	a := mustNew(t, 350)
	a1, _ := a.Allocate(100)
	a2, _ := a.Allocate(200)
	a.Allocate(50)

	_ = a1
	if err := a.Deallocate(a2); err != nil {
		t.Fatalf("Deallocate: %v", err)
	}
	a4, ok := a.Allocate(200)
	if !ok {
		t.Fatal("Allocate(200) after free should succeed")
	}
	if a4 != a2 {
		t.Errorf("a4 = %d, want %d", a4, a2)
	}
	if a.st.AllocsFromMap+a.st.AllocsFromCache != 1 {
		t.Errorf("recycle-path allocs = %d, want 1", a.st.AllocsFromMap+a.st.AllocsFromCache)
	}
	if a.pool.Used() != 350 {
		t.Errorf("Used = %d, want unchanged 350", a.pool.Used())
	}
	occupied := 0
	a.m.Ascending(func(_ uint64, meta blockmap.Meta) bool {
		if !meta.Free {
			occupied++
		}
		return true
	})
	if occupied != 3 {
		t.Errorf("occupied entries = %d, want 3", occupied)
	}
}

func TestScenarioSplit(t *testing.T) {
	// Capacity matches the three allocations exactly, so the bump path is
	// exhausted afterward and the refill must come from recycle.
	a := mustNew(t, 350)
	a1, _ := a.Allocate(100)
	a2, _ := a.Allocate(200)
	a.Allocate(50)
	_ = a1

	a.Deallocate(a2)
	a5, ok := a.Allocate(50)
	if !ok || a5 != a2 {
		t.Fatalf("a5 = %d ok=%v, want %d", a5, ok, a2)
	}
	frag, ok := a.m.Get(a2 + 50)
	if !ok || !frag.Free || frag.Size != 150 {
		t.Fatalf("fragment = %+v, ok=%v", frag, ok)
	}
	if a.pool.Used() != 350 {
		t.Errorf("Used = %d, want unchanged 350", a.pool.Used())
	}
}

func TestScenarioForwardCoalesce(t *testing.T) {
	a := mustNew(t, 1000)
	addrA, _ := a.Allocate(100)
	addrB, _ := a.Allocate(100)
	addrC, _ := a.Allocate(100)

	a.Deallocate(addrB)
	a.Deallocate(addrA)

	meta, ok := a.m.Get(addrA)
	if !ok || !meta.Free || meta.Size != 200 {
		t.Fatalf("meta at a = %+v, ok=%v, want free size 200", meta, ok)
	}
	cMeta, ok := a.m.Get(addrC)
	if !ok || cMeta.Free {
		t.Fatalf("c should still be occupied: %+v", cMeta)
	}
}

func TestScenarioNoBackwardMerge(t *testing.T) {
	a := mustNew(t, 1000)
	addrA, _ := a.Allocate(100)
	addrB, _ := a.Allocate(100)
	a.Allocate(100)

	a.Deallocate(addrA)
	a.Deallocate(addrB)

	metaA, ok := a.m.Get(addrA)
	if !ok || !metaA.Free || metaA.Size != 100 {
		t.Fatalf("meta at a = %+v, ok=%v", metaA, ok)
	}
	metaB, ok := a.m.Get(addrB)
	if !ok || !metaB.Free || metaB.Size != 100 {
		t.Fatalf("meta at b = %+v, ok=%v", metaB, ok)
	}
}

func TestScenarioExhaustionAndRecycle(t *testing.T) {
	a := mustNew(t, 1000)
	addrs := make([]uint64, 0, 10)
	for i := 0; i < 10; i++ {
		addr, ok := a.Allocate(100)
		if !ok {
			t.Fatalf("Allocate(100) #%d failed before exhaustion", i)
		}
		addrs = append(addrs, addr)
	}
	if _, ok := a.Allocate(1); ok {
		t.Fatal("expected exhaustion")
	}

	mid := addrs[5]
	if err := a.Deallocate(mid); err != nil {
		t.Fatalf("Deallocate: %v", err)
	}
	got, ok := a.Allocate(100)
	if !ok || got != mid {
		t.Fatalf("recycle alloc = %d ok=%v, want %d", got, ok, mid)
	}
	if a.st.AllocsFromMap+a.st.AllocsFromCache != 1 {
		t.Errorf("expected exactly one recycle allocation, got map=%d cache=%d", a.st.AllocsFromMap, a.st.AllocsFromCache)
	}
	if a.pool.Used() != 1000 {
		t.Errorf("Used = %d, want unchanged 1000", a.pool.Used())
	}
}

func TestDeallocateInvalidAddress(t *testing.T) {
	a := mustNew(t, 1000)
	if err := a.Deallocate(999999); err == nil {
		t.Error("expected error for unknown address")
	}
}

func TestDeallocateIdempotentOnDoubleFree(t *testing.T) {
	a := mustNew(t, 1000)
	addr, _ := a.Allocate(100)
	if err := a.Deallocate(addr); err != nil {
		t.Fatalf("first Deallocate: %v", err)
	}
	before := a.st.Frees
	if err := a.Deallocate(addr); err != nil {
		t.Fatalf("double Deallocate should be idempotent, got: %v", err)
	}
	if a.st.Frees != before {
		t.Errorf("Frees counter changed on double-free: %d -> %d", before, a.st.Frees)
	}
}

func TestAllocateZeroFails(t *testing.T) {
	a := mustNew(t, 1000)
	if _, ok := a.Allocate(0); ok {
		t.Error("Allocate(0) should fail")
	}
}

func TestCacheSlotServesExactFitFast(t *testing.T) {
	// Capacity matches the two allocations exactly, so the bump path is
	// exhausted afterward and the refill must come from the cache slot.
	a := mustNew(t, 400)
	addrA, _ := a.Allocate(300)
	a.Allocate(100)
	a.Deallocate(addrA)

	if a.cache.Size != 300 || a.cache.Addr != addrA {
		t.Fatalf("cache slot = %+v, want addr=%d size=300", a.cache, addrA)
	}
	got, ok := a.Allocate(300)
	if !ok || got != addrA {
		t.Fatalf("cache-served alloc = %d, ok=%v", got, ok)
	}
	if a.st.AllocsFromCache != 1 {
		t.Errorf("AllocsFromCache = %d, want 1", a.st.AllocsFromCache)
	}
}

func TestDumpStatsAndDumpMapProduceText(t *testing.T) {
	a := mustNew(t, 1000)
	a.Allocate(10)
	if s := a.DumpStats(); s == "" {
		t.Error("DumpStats returned empty string")
	}
	if s := a.DumpMap(); s == "" {
		t.Error("DumpMap returned empty string")
	}
}
