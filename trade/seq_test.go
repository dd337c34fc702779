package trade

import "testing"

func TestSeqGenNext(t *testing.T) {
	g := NewSeqGen()
	for i := int64(1); i <= 5; i++ {
		if v := g.Next("k"); v != i {
			t.Fatalf("expected %v, received %v", i, v)
		}
	}
	// 不同key互不影响
	if v := g.Next("other"); v != 1 {
		t.Errorf("new key should start at 1, received %v", v)
	}
	if v := g.Next("k"); v != 6 {
		t.Errorf("expected 6, received %v", v)
	}
}

func TestSeqGenMakeID(t *testing.T) {
	g := NewSeqGen()
	var tradeDate int64 = 20231201
	for i := int64(1); i <= 3; i++ {
		id := g.MakeID(tradeDate, "task_id")
		want := tradeDate*10000 + i
		if id != want {
			t.Errorf("expected %v, received %v", want, id)
		}
	}
	// entrust_no命名空间独立计数
	id := g.MakeID(tradeDate, "entrust_no")
	if id != tradeDate*10000+1 {
		t.Errorf("expected %v, received %v", tradeDate*10000+1, id)
	}
}

func TestSeqGenScope(t *testing.T) {
	g1 := NewSeqGen()
	g2 := NewSeqGen()
	g1.Next("k")
	g1.Next("k")
	if v := g2.Next("k"); v != 1 {
		t.Errorf("generators should be instance scoped, received %v", v)
	}
}
