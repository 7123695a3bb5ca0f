package minimax

import "testing"

func TestCacheKeying(t *testing.T) {
	c := newCache()
	c.put("board", 3, true, 1.5)

	if _, ok := c.get("board", 2, true); ok {
		t.Error("remaining depth is part of the key")
	}
	if _, ok := c.get("board", 3, false); ok {
		t.Error("the side to move is part of the key")
	}
	if _, ok := c.get("other", 3, true); ok {
		t.Error("the board is part of the key")
	}

	utility, ok := c.get("board", 3, true)
	if !ok || utility != 1.5 {
		t.Errorf("got (%v, %t), want (1.5, true)", utility, ok)
	}

	c.put("board", 3, true, 2.5)
	if utility, _ := c.get("board", 3, true); utility != 2.5 {
		t.Errorf("a later put should win, got %v", utility)
	}
	if c.size() != 1 {
		t.Errorf("overwriting should not grow the cache, size %d", c.size())
	}

	c.put("board", Unbounded, true, -4)
	if c.size() != 2 {
		t.Errorf("unbounded entries key separately, size %d", c.size())
	}
}
