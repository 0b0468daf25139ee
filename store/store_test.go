package store

import "testing"

func TestCacheKeyShapes(t *testing.T) {
	if got := leadKey("42"); got != "dashboard:leads|lead_id:42" {
		t.Errorf("leadKey = %q", got)
	}
	if got := userLeadsKey("u1"); got != "dashboard:leads|user_id:u1" {
		t.Errorf("userLeadsKey = %q", got)
	}
}
